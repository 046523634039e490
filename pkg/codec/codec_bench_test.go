//go:build bench
// +build bench

package codec

import "testing"

func BenchmarkEncodeVarLong(b *testing.B) {
	benchmarks := []struct {
		name  string
		value uint32
	}{
		{name: "1byte", value: 0x7f},
		{name: "2byte", value: 0x3fff},
		{name: "3byte", value: 0x1fffff},
		{name: "4byte", value: 0x0fffffff},
		{name: "5byte", value: 0xffffffff},
	}

	buf := make([]byte, MaxVarLongLen)
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				EncodeVarLong(buf, bm.value)
			}
		})
	}
}

func BenchmarkDecodeVarLong(b *testing.B) {
	benchmarks := []struct {
		name  string
		value uint32
	}{
		{name: "1byte", value: 0x7f},
		{name: "2byte", value: 0x3fff},
		{name: "3byte", value: 0x1fffff},
		{name: "4byte", value: 0x0fffffff},
		{name: "5byte", value: 0xffffffff},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			buf := make([]byte, MaxVarLongLen)
			EncodeVarLong(buf, bm.value)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = DecodeVarLong(buf)
			}
		})
	}
}

func BenchmarkFixedCodec(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		buf := make([]byte, ShortLen)
		for i := 0; i < b.N; i++ {
			EncodeShort(buf, 0x1234)
			_ = DecodeShort(buf)
		}
	})

	b.Run("long", func(b *testing.B) {
		buf := make([]byte, LongLen)
		for i := 0; i < b.N; i++ {
			EncodeLong(buf, 0x12345678)
			_ = DecodeLong(buf)
		}
	})
}

func BenchmarkHexString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = HexString(0xdeadbeef)
	}
}
