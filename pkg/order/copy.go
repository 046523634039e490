package order

// BoundedCopy copies bytes from src into dst without ever writing past
// len(dst), and returns the number of bytes copied: the smaller of the two
// lengths. Truncation is not an error; callers that need to detect it
// compare the returned count with len(src).
func BoundedCopy(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	return copy(dst, src[:n])
}
