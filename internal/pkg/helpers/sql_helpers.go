package helpers

// StringPtr returns a pointer to s, or nil when s is empty. Used when writing
// optional offering fields so empty form values round-trip as NULL.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" when s is nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
