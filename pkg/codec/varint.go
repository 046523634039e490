package codec

// MaxVarLongLen is the largest number of bytes EncodeVarLong writes.
const MaxVarLongLen = 5

// EncodeVarLong writes v into buf using the self-describing variable-length
// format described in the package documentation and returns the number of
// bytes written (1 to MaxVarLongLen). The smallest length that can hold v
// is always chosen. buf must hold at least VarLongSize(v) bytes.
func EncodeVarLong(buf []byte, v uint32) int {
	switch {
	case v <= 0x7f:
		buf[0] = byte(v)
		return 1
	case v <= 0x3fff:
		buf[0] = byte(v>>8) | 0x80
		buf[1] = byte(v)
		return 2
	case v <= 0x1fffff:
		buf[0] = byte(v>>16) | 0x80 | 0x40
		buf[1] = byte(v >> 8)
		buf[2] = byte(v)
		return 3
	case v <= 0x0fffffff:
		buf[0] = byte(v>>24) | 0x80 | 0x40 | 0x20
		buf[1] = byte(v >> 16)
		buf[2] = byte(v >> 8)
		buf[3] = byte(v)
		return 4
	default:
		buf[0] = 0xf0
		buf[1] = byte(v >> 24)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 8)
		buf[4] = byte(v)
		return 5
	}
}

// DecodeVarLong reads a variable-length value from the front of buf and
// returns it together with the number of bytes consumed.
//
// Decoding cannot fail: the leading byte always selects one of the five
// length classes, so arbitrary input yields some value. buf must hold the
// full encoding its leading byte announces (VarBufSize bytes).
func DecodeVarLong(buf []byte) (uint32, int) {
	c := buf[0]
	switch {
	case c&0x80 == 0:
		return uint32(c), 1
	case c&0x40 == 0:
		return uint32(c&0x3f)<<8 | uint32(buf[1]), 2
	case c&0x20 == 0:
		return uint32(c&0x1f)<<16 | uint32(buf[1])<<8 | uint32(buf[2]), 3
	case c&0x10 == 0:
		return uint32(c&0x0f)<<24 | uint32(buf[1])<<16 |
			uint32(buf[2])<<8 | uint32(buf[3]), 4
	default:
		return DecodeLong(buf[1:]), 5
	}
}

// VarLongSize returns the number of bytes EncodeVarLong would use for v,
// without writing anything.
func VarLongSize(v uint32) int {
	switch {
	case v <= 0x7f:
		return 1
	case v <= 0x3fff:
		return 2
	case v <= 0x1fffff:
		return 3
	case v <= 0x0fffffff:
		return 4
	default:
		return 5
	}
}

// VarBufSize returns the number of bytes the encoding at the front of buf
// occupies, by inspecting only the leading byte. It agrees with the count
// DecodeVarLong returns for the same buffer.
func VarBufSize(buf []byte) int {
	c := buf[0]
	switch {
	case c&0x80 == 0:
		return 1
	case c&0x40 == 0:
		return 2
	case c&0x20 == 0:
		return 3
	case c&0x10 == 0:
		return 4
	default:
		return 5
	}
}
