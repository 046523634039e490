package codec

// Buffer sizes required by the encoders.
const (
	// ShortLen is the number of bytes EncodeShort writes.
	ShortLen = 2
	// LongLen is the number of bytes EncodeLong writes.
	LongLen = 4
	// HexLen is the number of bytes EncodeHex writes: 8 hex digits plus
	// a terminating NUL.
	HexLen = 9
)

// EncodeShort copies a 16-bit value into the first ShortLen bytes of buf,
// most significant byte first. buf must hold at least ShortLen bytes.
func EncodeShort(buf []byte, v uint16) {
	buf[0] = byte(v >> 8)
	buf[1] = byte(v)
}

// DecodeShort reads the 16-bit value written by EncodeShort.
func DecodeShort(buf []byte) uint16 {
	return uint16(buf[0])<<8 | uint16(buf[1])
}

// EncodeLong copies a 32-bit value into the first LongLen bytes of buf as
// its big-endian two's-complement bit pattern. buf must hold at least
// LongLen bytes.
//
// The encoder takes a signed value while DecodeLong returns an unsigned
// one; the pair round-trips the bit pattern, not the sign. See the package
// documentation.
func EncodeLong(buf []byte, v int32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}

// DecodeLong reassembles the four bytes written by EncodeLong as an
// unsigned 32-bit integer.
func DecodeLong(buf []byte) uint32 {
	return uint32(buf[0])<<24 |
		uint32(buf[1])<<16 |
		uint32(buf[2])<<8 |
		uint32(buf[3])
}

const hexDigits = "0123456789abcdef"

// EncodeHex writes the 8-digit lowercase hex representation of v into buf,
// most significant nibble first, followed by a NUL byte. buf must hold at
// least HexLen bytes.
func EncodeHex(buf []byte, v uint32) {
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	buf[8] = 0
}

// HexString returns the 8 hex digits of v as a string, without the
// terminator EncodeHex writes.
func HexString(v uint32) string {
	var buf [HexLen]byte
	EncodeHex(buf[:], v)
	return string(buf[:8])
}
