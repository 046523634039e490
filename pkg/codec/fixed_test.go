package codec

import (
	"bytes"
	"testing"
)

func TestEncodeShort_Layout(t *testing.T) {
	testCases := []struct {
		name  string
		value uint16
		want  []byte
	}{
		{name: "zero", value: 0, want: []byte{0x00, 0x00}},
		{name: "low byte only", value: 0x2c, want: []byte{0x00, 0x2c}},
		{name: "both bytes", value: 0x1234, want: []byte{0x12, 0x34}},
		{name: "max", value: 0xffff, want: []byte{0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, ShortLen)
			EncodeShort(buf, tc.value)
			if !bytes.Equal(buf, tc.want) {
				t.Errorf("EncodeShort(%#x) = %x, want %x", tc.value, buf, tc.want)
			}
		})
	}
}

func TestShort_RoundTrip(t *testing.T) {
	buf := make([]byte, ShortLen)
	for v := 0; v <= 0xffff; v++ {
		EncodeShort(buf, uint16(v))
		if got := DecodeShort(buf); got != uint16(v) {
			t.Fatalf("round trip failed for %#x: got %#x", v, got)
		}
	}
}

func TestLong_BitPatternRoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		value int32
		want  uint32
	}{
		{name: "zero", value: 0, want: 0},
		{name: "one", value: 1, want: 1},
		{name: "mixed nibbles", value: 0x12345678, want: 0x12345678},
		{name: "max positive", value: 0x7fffffff, want: 0x7fffffff},
		{name: "minus one", value: -1, want: 0xffffffff},
		{name: "most negative", value: -0x80000000, want: 0x80000000},
		{name: "minus 300", value: -300, want: 0xfffffed4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, LongLen)
			EncodeLong(buf, tc.value)
			got := DecodeLong(buf)
			if got != tc.want {
				t.Errorf("DecodeLong(EncodeLong(%d)) = %#x, want %#x", tc.value, got, tc.want)
			}
			// The decoder reconstructs the unsigned reinterpretation of the
			// encoded bits, never the signed input.
			if got != uint32(tc.value) {
				t.Errorf("decoded value %#x is not the bit pattern of %d", got, tc.value)
			}
		})
	}
}

func TestEncodeLong_Layout(t *testing.T) {
	buf := make([]byte, LongLen)
	EncodeLong(buf, 0x01020304)
	if !bytes.Equal(buf, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("EncodeLong is not big-endian: %x", buf)
	}

	EncodeLong(buf, -1)
	if !bytes.Equal(buf, []byte{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("EncodeLong(-1) should write the two's-complement pattern: %x", buf)
	}
}

func TestEncodeHex(t *testing.T) {
	testCases := []struct {
		name  string
		value uint32
		want  string
	}{
		{name: "zero pads to eight digits", value: 0, want: "00000000"},
		{name: "all nibbles", value: 0xdeadbeef, want: "deadbeef"},
		{name: "alternating", value: 0x0f0f0f0f, want: "0f0f0f0f"},
		{name: "small value", value: 0x12c, want: "0000012c"},
		{name: "max", value: 0xffffffff, want: "ffffffff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, HexLen)
			EncodeHex(buf, tc.value)

			if string(buf[:8]) != tc.want {
				t.Errorf("EncodeHex(%#x) wrote %q, want %q", tc.value, buf[:8], tc.want)
			}
			if buf[8] != 0 {
				t.Errorf("EncodeHex must terminate with a NUL byte, got %#x", buf[8])
			}
			if got := HexString(tc.value); got != tc.want {
				t.Errorf("HexString(%#x) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
