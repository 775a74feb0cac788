package entity

import "strings"

// Gender values accepted after normalization.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// NormalizeGender lower-cases and trims a submitted gender and maps it onto
// the accepted set. The misspelling "femal" is corrected to "female"; this is
// a deliberate data-cleaning rule carried over from the existing record base
// and the tolerated list must not grow without new requirements.
// An empty input stays empty (the field is optional). ok is false for any
// other value.
func NormalizeGender(s string) (normalized string, ok bool) {
	g := strings.ToLower(strings.TrimSpace(s))
	switch g {
	case "":
		return "", true
	case GenderMale, GenderFemale, GenderOther:
		return g, true
	case "femal":
		return GenderFemale, true
	}
	return "", false
}
