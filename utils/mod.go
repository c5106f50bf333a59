package utils

// FindIndex returns the index of the first element matching, or -1.
func FindIndex[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// RemoveAt returns a new slice without the i-th element. The input is left untouched
// so snapshots sharing a backing array are never corrupted.
func RemoveAt[T any](slice []T, i int) []T {
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}
