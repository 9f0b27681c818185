package helpers

// NullableString converts a cleaned string to the pointer form stored on
// models: nil for an empty string, so blank dataset cells become SQL NULLs
// instead of empty strings.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue unwraps a string pointer, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
