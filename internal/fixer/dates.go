package fixer

import "time"

// normalizeDate rewrites legacy DD.MM.YYYY dates to ISO form, leaving
// anything else untouched.
func normalizeDate(s string) string {
	if s == "" {
		return s
	}
	parsed, err := time.Parse("02.01.2006", s)
	if err != nil {
		return s
	}
	return parsed.Format("2006-01-02")
}

// normalizeCompactDate rewrites YYYYMMDD dates to ISO form.
func normalizeCompactDate(s string) string {
	if len(s) != 8 {
		return s
	}
	parsed, err := time.Parse("20060102", s)
	if err != nil {
		return s
	}
	return parsed.Format("2006-01-02")
}
