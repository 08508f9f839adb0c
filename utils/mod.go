package utils

// FindIndex returns the index of the first occurrence of item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Filter keeps the elements for which keep returns true, reusing the backing
// array of slice.
func Filter[T any](slice []T, keep func(T) bool) []T {
	out := slice[:0]
	for _, v := range slice {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
