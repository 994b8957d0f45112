package patch

// Coalesce dereferences ptr when it is set and falls back otherwise. Handy
// for optional DTO fields that map onto non-pointer domain values.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
