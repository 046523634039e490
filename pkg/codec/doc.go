// Package codec provides the byte-level integer encodings used by PBL's
// storage structures.
//
// The codec package implements two families of encodings: fixed-width
// big-endian integers and a self-describing variable-length integer. Higher
// layers (trees, hash tables, record files) use them to serialize lengths
// and keys into node buffers. Everything here operates on in-memory byte
// slices the caller owns; nothing is allocated, retained or validated.
//
// # Fixed-Width Format
//
// Fixed-width values are stored most significant byte first:
//
//	EncodeShort: 2 bytes, big-endian uint16
//	EncodeLong:  4 bytes, big-endian two's-complement bit pattern
//	EncodeHex:   8 lowercase ASCII hex digits plus a terminating NUL (9 bytes)
//
// EncodeLong accepts a signed value while DecodeLong reconstructs the four
// bytes as an unsigned integer. For negative inputs the round trip yields
// the two's-complement unsigned equivalent, not the original signed value.
// This is deliberate: the pair round-trips the bit pattern, and callers that
// want the signed value back reinterpret it themselves.
//
// # Variable-Length Format
//
// EncodeVarLong stores a uint32 in 1 to 5 bytes. The count of leading one
// bits in the first byte determines the total length, so the encoding needs
// no separate length field:
//
//	value range           bytes  leading byte
//	0x00000000-0x0000007f  1     0vvvvvvv
//	0x00000080-0x00003fff  2     10vvvvvv
//	0x00004000-0x001fffff  3     110vvvvv
//	0x00200000-0x0fffffff  4     1110vvvv
//	0x10000000-0xffffffff  5     0xf0, then 4 raw big-endian bytes
//
// Continuation bytes carry raw value bits, high bits first. The encoder
// always picks the smallest length that can hold the value.
//
// Decoding never fails: every possible leading byte selects exactly one of
// the five length classes, so arbitrary bytes decode to some value. The
// codec therefore cannot detect corrupt input; layers that need that wrap
// the encoding in checksums or known total lengths.
//
// # Preconditions
//
// Encoders write into caller-supplied buffers and assume the buffer is large
// enough (ShortLen, LongLen, HexLen or MaxVarLongLen bytes). Passing a
// shorter buffer is a programming error and panics on the slice bounds
// check; there is no error return to test for.
//
// # Thread Safety
//
// All functions are pure and touch no shared state. They may be called from
// any number of goroutines without synchronization.
package codec
