// Package order establishes a total order over raw byte buffers of
// arbitrary, possibly unequal length. Index structures use it to decide the
// relative position of serialized keys during search and insert.
//
// The order is byte-wise unsigned comparison extended by a length
// tie-break: an empty buffer sorts before any non-empty one, and a buffer
// that is a strict prefix of another sorts before it ("abc" < "abcd").
// Compare and CommonPrefixLen agree on where two buffers first diverge.
//
// All functions are pure and safe for unsynchronized concurrent use.
package order

import "bytes"

// Compare orders left and right. It returns -1 if left is smaller, 0 if the
// buffers are equal in content and length, and 1 if left is bigger.
//
// Bytes are compared as unsigned values regardless of platform char
// signedness, so the result is a strict total order: exactly one of the
// three outcomes holds for any pair, and the order is transitive.
func Compare(left, right []byte) int {
	// A buffer of length 0 is logically smaller than any other buffer.
	if len(left) == 0 {
		if len(right) == 0 {
			return 0
		}
		return -1
	}
	if len(right) == 0 {
		return 1
	}

	n := len(left)
	if len(right) < n {
		n = len(right)
	}
	if rc := bytes.Compare(left[:n], right[:n]); rc != 0 {
		return rc
	}

	// Equal over the shared length: the longer buffer is logically bigger.
	switch {
	case len(left) < len(right):
		return -1
	case len(left) > len(right):
		return 1
	}
	return 0
}

// CommonPrefixLen returns the number of leading bytes that are identical
// between left and right, scanning at most the shorter length. It returns 0
// when the buffers differ at the first byte or either is empty.
func CommonPrefixLen(left, right []byte) int {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	i := 0
	for i < n && left[i] == right[i] {
		i++
	}
	return i
}
