package helpers

// String returns the dereferenced value of the input pointer if it's not nil, otherwise, it returns an empty string.
func String(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringOr returns the dereferenced value of p, or fallback when p is nil.
func StringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// Truncate cuts s to n bytes, the last three replaced by "...".
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// Ptr returns a pointer to the value passed as an argument. If the value is nil, it returns a nil pointer.
func Ptr[T any](v T) *T {
	if any(v) == nil {
		return nil
	}
	return &v
}
