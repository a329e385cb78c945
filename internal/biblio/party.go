// Package biblio holds the typed form of the bibliographic records the
// upstream office systems export per application. Records are parsed once
// at the receiver boundary; later pipeline stages work on these structs
// and never on raw JSON maps.
package biblio

import "encoding/json"

// FreeFormatNameDetails carries a party name. Upstream exports sometimes
// nest a second FreeFormatNameDetails level (trademark representatives),
// hence the optional Nested pointer.
type FreeFormatNameDetails struct {
	FreeFormatNameLine         string                 `json:"FreeFormatNameLine,omitempty"`
	FreeFormatNameLineOriginal string                 `json:"FreeFormatNameLineOriginal,omitempty"`
	Nested                     *FreeFormatNameDetails `json:"FreeFormatNameDetails,omitempty"`
}

// NameLine returns the name line, descending into the nested level when
// the flat one is absent.
func (d *FreeFormatNameDetails) NameLine() string {
	if d == nil {
		return ""
	}
	if d.FreeFormatNameLine != "" {
		return d.FreeFormatNameLine
	}
	if d.Nested != nil {
		return d.Nested.FreeFormatNameLine
	}
	return ""
}

type FreeFormatName struct {
	FreeFormatNameDetails *FreeFormatNameDetails `json:"FreeFormatNameDetails,omitempty"`
}

type PartyName struct {
	FreeFormatName *FreeFormatName `json:"FreeFormatName,omitempty"`
}

// Details returns the innermost name details, or nil.
func (n *PartyName) Details() *FreeFormatNameDetails {
	if n == nil || n.FreeFormatName == nil {
		return nil
	}
	return n.FreeFormatName.FreeFormatNameDetails
}

// FreeFormatAddress carries an address. The original name line sometimes
// lands here instead of under Name, so both originals are modelled.
type FreeFormatAddress struct {
	FreeFormatAddressLine         string `json:"FreeFormatAddressLine,omitempty"`
	FreeFormatAddressLineOriginal string `json:"FreeFormatAddressLineOriginal,omitempty"`
	FreeFormatNameLineOriginal    string `json:"FreeFormatNameLineOriginal,omitempty"`
}

type PartyAddress struct {
	AddressCountryCode string             `json:"AddressCountryCode,omitempty"`
	FreeFormatAddress  *FreeFormatAddress `json:"FreeFormatAddress,omitempty"`
}

// FormattedNameAddress pairs a party's name and address.
type FormattedNameAddress struct {
	Name    *PartyName    `json:"Name,omitempty"`
	Address *PartyAddress `json:"Address,omitempty"`
}

// IsUA reports whether the party address is Ukrainian.
func (f *FormattedNameAddress) IsUA() bool {
	return f != nil && f.Address != nil && f.Address.AddressCountryCode == "UA"
}

// DropEmptyOriginals removes original-language name and address lines for
// Ukrainian parties and strips empty ones for the rest. Original lines
// only make sense for foreign parties.
func (f *FormattedNameAddress) DropEmptyOriginals() {
	if f == nil {
		return
	}
	ua := f.IsUA()
	if f.Address != nil && f.Address.FreeFormatAddress != nil {
		addr := f.Address.FreeFormatAddress
		if ua || addr.FreeFormatAddressLineOriginal == "" {
			addr.FreeFormatAddressLineOriginal = ""
		}
		if ua || addr.FreeFormatNameLineOriginal == "" {
			addr.FreeFormatNameLineOriginal = ""
		}
	}
	if details := f.Name.Details(); details != nil {
		if ua || details.FreeFormatNameLineOriginal == "" {
			details.FreeFormatNameLineOriginal = ""
		}
	}
}

type AddressBook struct {
	FormattedNameAddress *FormattedNameAddress `json:"FormattedNameAddress,omitempty"`
}

type Applicant struct {
	ApplicantAddressBook *AddressBook `json:"ApplicantAddressBook,omitempty"`
}

type ApplicantDetails struct {
	Applicant []*Applicant `json:"Applicant,omitempty"`
}

type Holder struct {
	HolderAddressBook *AddressBook `json:"HolderAddressBook,omitempty"`
}

type HolderDetails struct {
	Holder []*Holder `json:"Holder,omitempty"`
}

type Representative struct {
	RepresentativeAddressBook *AddressBook `json:"RepresentativeAddressBook,omitempty"`
}

type RepresentativeDetails struct {
	Representative []*Representative `json:"Representative,omitempty"`
}

type Designer struct {
	DesignerAddressBook *AddressBook `json:"DesignerAddressBook,omitempty"`
}

type DesignerDetails struct {
	Designer []*Designer `json:"Designer,omitempty"`
}

type Author struct {
	AuthorAddressBook *AddressBook `json:"AuthorAddressBook,omitempty"`
}

type AuthorDetails struct {
	Author []*Author `json:"Author,omitempty"`
}

type Licensee struct {
	LicenseeAddressBook *AddressBook `json:"LicenseeAddressBook,omitempty"`
}

type LicenseeDetails struct {
	Licensee []*Licensee `json:"Licensee,omitempty"`
}

type Licensor struct {
	LicensorAddressBook *AddressBook `json:"LicensorAddressBook,omitempty"`
}

type LicensorDetails struct {
	Licensor []*Licensor `json:"Licensor,omitempty"`
}

// NameLine extracts the party name line, empty when absent.
func (b *AddressBook) NameLine() string {
	if b == nil || b.FormattedNameAddress == nil {
		return ""
	}
	return b.FormattedNameAddress.Name.Details().NameLine()
}

// NameLineOriginal extracts the original-language name line, if any.
func (b *AddressBook) NameLineOriginal() string {
	if b == nil || b.FormattedNameAddress == nil {
		return ""
	}
	if details := b.FormattedNameAddress.Name.Details(); details != nil {
		return details.FreeFormatNameLineOriginal
	}
	return ""
}

// AddressLine extracts the party address line, empty when absent.
func (b *AddressBook) AddressLine() string {
	if b == nil || b.FormattedNameAddress == nil ||
		b.FormattedNameAddress.Address == nil ||
		b.FormattedNameAddress.Address.FreeFormatAddress == nil {
		return ""
	}
	return b.FormattedNameAddress.Address.FreeFormatAddress.FreeFormatAddressLine
}

// rawSection keeps a JSON subtree verbatim for sections the pipeline only
// moves or deletes whole.
type rawSection = json.RawMessage
