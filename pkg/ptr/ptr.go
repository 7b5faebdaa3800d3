package ptr

// Ptr returns a pointer to the given value.
// Convenience helper for optional struct fields and filters.
func Ptr[T any](v T) *T {
	return &v
}
