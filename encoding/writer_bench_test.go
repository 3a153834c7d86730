package encoding

import (
	"io"
	"math"
	"testing"
)

func BenchmarkCompact(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		c := Compact(uint64(i) * 0x9E3779B97F4A7C15)
		sink += c.Len()
	}
	_ = sink
}

func BenchmarkAppendInt(b *testing.B) {
	dst := make([]byte, 0, MaxRecordSize)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dst = AppendInt(dst[:0], int64(i)-math.MaxInt32)
	}
}

func BenchmarkWriter_WriteInt(b *testing.B) {
	w := NewWriter(io.Discard)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := w.WriteInt(int64(i) - math.MaxInt32); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriter_WriteBool(b *testing.B) {
	w := NewWriter(io.Discard)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := w.WriteBool(i&1 == 0); err != nil {
			b.Fatal(err)
		}
	}
}
