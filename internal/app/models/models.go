package models

// Facility flag values for accommodation, language_classes and
// accessibility. The survey exports these as plain text, so they are kept
// as strings with a fixed domain rather than database enums.
const (
	AvailabilityYes     = "Yes"
	AvailabilityNo      = "No"
	AvailabilityPartial = "Partial"
)

// ValidAvailability reports whether v is one of the enumerated flag values.
func ValidAvailability(v string) bool {
	return v == AvailabilityYes || v == AvailabilityNo || v == AvailabilityPartial
}

// ValidYesNo reports whether v is Yes or No. Language classes are a strict
// yes/no question in the survey, with no partial answer.
func ValidYesNo(v string) bool {
	return v == AvailabilityYes || v == AvailabilityNo
}
