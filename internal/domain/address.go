package domain

import "strings"

// BuildFullAddress assembles the geocodable destination string from the three
// address cells plus the configured country hint. Segments are the street,
// "postal city", and the hint, comma-joined with empty segments dropped.
// When street, postal and city all normalize to empty the result is "", even
// with a hint configured: the hint alone never identifies a destination.
func BuildFullAddress(street, postal, city Cell, countryHint string) string {
	s := street.Normalize()
	p := postal.Normalize()
	c := city.Normalize()

	if s == "" && p == "" && c == "" {
		return ""
	}

	segments := make([]string, 0, 3)
	if s != "" {
		segments = append(segments, s)
	}
	if pc := strings.TrimSpace(p + " " + c); pc != "" {
		segments = append(segments, pc)
	}
	if hint := strings.TrimSpace(countryHint); hint != "" {
		segments = append(segments, hint)
	}

	return strings.Join(segments, ", ")
}
