package pointer

func FromAny[T any](v T) *T {
	return &v
}

// ToString dereferences p, treating nil as the empty string.
func ToString(p *string) string {
	if p == nil {
		return ""
	}

	return *p
}
