package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// Reused capacity is not cleared.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T any](dst, src []T) int {
	return copy(dst, src)
}
