package domain

import "github.com/ukripo/sisindex/internal/objtype"

// Per-field publication defaults for limited applications. The same table
// drives both the raw-record filter and the writer's document-file
// deletion, so a field can never be hidden in the index yet leak through
// a published file.

// Patent-family fields all default to hidden.
var patentHiddenFields = []string{
	"AB", "CL", "DE", "I_71", "I_72", "I_73", "I_98", "I_98_Index",
}

// Copyright-certificate fields default to hidden except the work titles.
var copyrightFields = map[string]bool{
	"AuthorDetails":              false,
	"Annotation":                 false,
	"ApplicantDetails":           false,
	"CopyrightObjectKindDetails": false,
	"EmployerDetails":            false,
	"HolderDetails":              false,
	"PromulgationData":           false,
	"RegistrationKind":           false,
	"RegistrationKindCode":       false,
	"RegistrationOfficeCode":     false,
	"RepresentativeDetails":      false,
	"Name":                       true,
	"NameShort":                  true,
}

// Decision/agreement fields keep the registration facts and titles
// visible by default, everything else hidden.
var decisionFields = map[string]bool{
	"RegistrationNumber":         true,
	"RegistrationDate":           true,
	"PublicationDetails":         true,
	"Name":                       true,
	"NameShort":                  true,
	"ApplicationNumber":          false,
	"Annotation":                 false,
	"ApplicantDetails":           false,
	"ApplicationDate":            false,
	"AuthorDetails":              false,
	"CopyrightObjectKindDetails": false,
	"DocFlow":                    false,
	"LicenseeDetails":            false,
	"LicensorDetails":            false,
	"RegistrationKind":           false,
	"RegistrationKindCode":       false,
	"RegistrationOfficeCode":     false,
	"RepresentativeDetails":      false,
}

// PatentFields lists the restrictable patent-family sections.
func PatentFields() []string {
	return patentHiddenFields
}

// CopyrightFields lists the restrictable copyright-certificate fields with
// their publication defaults.
func CopyrightFields() map[string]bool {
	return copyrightFields
}

// DecisionFields lists the restrictable decision/agreement fields with
// their publication defaults.
func DecisionFields() map[string]bool {
	return decisionFields
}

// DefaultVisible resolves the policy default for a field of the given
// object type family.
func DefaultVisible(objType objtype.ID, field string) bool {
	switch {
	case objType.PatentFamily():
		return false
	case objType == objtype.Copyright:
		return copyrightFields[field]
	case objType == objtype.Decision:
		return decisionFields[field]
	default:
		return true
	}
}

// Incoming-correspondence document kinds tied to restrictable patent
// sections. The writer deletes the matching files when the section is
// hidden.
const (
	EnterNumAbstract     = 100
	EnterNumClaims       = 98
	EnterNumDescription  = 99
	EnterNumDescription2 = 101
)

// FileFieldForEnterNum maps a document kind to the allow-list field that
// governs it. The boolean reports whether the kind is governed at all.
func FileFieldForEnterNum(enterNum int) (string, bool) {
	switch enterNum {
	case EnterNumAbstract:
		return "AB", true
	case EnterNumClaims:
		return "CL", true
	case EnterNumDescription, EnterNumDescription2:
		return "DE", true
	default:
		return "", false
	}
}
