package fixer

import "github.com/ukripo/sisindex/internal/biblio"

// fixCopyrightFamily normalizes the application and registration dates of
// copyright certificates and decisions.
func (s *Service) fixCopyrightFamily(record *biblio.Record) {
	certificate, decision := record.CopyrightBiblio()
	if certificate != nil {
		certificate.ApplicationDate = normalizeDate(certificate.ApplicationDate)
		certificate.RegistrationDate = normalizeDate(certificate.RegistrationDate)
	}
	if decision != nil {
		decision.ApplicationDate = normalizeDate(decision.ApplicationDate)
		decision.RegistrationDate = normalizeDate(decision.RegistrationDate)
	}
}
