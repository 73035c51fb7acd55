// Package sliceutil provides small generic slice helpers.
package sliceutil

// CommonPrefixLen reports the length of the longest prefix
// shared by the two slices.
func CommonPrefixLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
