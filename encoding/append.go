package encoding

import (
	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
)

// Raw boolean codes stored in the header nibble.
const (
	boolAbsent uint8 = 0
	boolTrue   uint8 = 1
	boolFalse  uint8 = 2
)

// AppendBool appends the encoding of v to dst: 0x11 for true, 0x12 for false.
func AppendBool(dst []byte, v bool) []byte {
	return AppendBoolOpt(dst, Some(v))
}

// AppendBoolOpt appends the encoding of an optional boolean to dst.
// An absent boolean is 0x10.
func AppendBoolOpt(dst []byte, v Optional[bool]) []byte {
	raw := boolAbsent
	if b, ok := v.Get(); ok {
		raw = boolFalse
		if b {
			raw = boolTrue
		}
	}

	return appendTiny(dst, format.TagBoolean, raw)
}

// AppendIntPos appends the encoding of a non-negative integer to dst.
//
// The header nibble is the number of payload bytes, and the payload is the
// compacted big-endian value, e.g. 0x1234 encodes as 0x22 0x12 0x34.
func AppendIntPos(dst []byte, v uint64) []byte {
	c := Compact(v)

	return appendShort(dst, format.TagIntPos, c.Bytes())
}

// AppendIntPosOpt appends the encoding of an optional non-negative integer to
// dst. An absent value is the single byte 0x20.
func AppendIntPosOpt(dst []byte, v Optional[uint64]) []byte {
	m, ok := v.Get()
	if !ok {
		return appendShort(dst, format.TagIntPos, nil)
	}

	return AppendIntPos(dst, m)
}

// AppendIntNeg appends the encoding of the negative integer -magnitude to dst.
//
// The payload holds magnitude-1, so -1 encodes as 0x31 0x00 and there is no
// negative zero. A zero magnitude is a contract violation: AppendIntNeg panics
// with errs.ErrNegativeZero and appends nothing.
func AppendIntNeg(dst []byte, magnitude uint64) []byte {
	if magnitude == 0 {
		panic(errs.ErrNegativeZero)
	}
	c := Compact(magnitude - 1)

	return appendShort(dst, format.TagIntNeg, c.Bytes())
}

// AppendIntNegOpt appends the encoding of an optional negative magnitude to
// dst. An absent value is the single byte 0x30.
func AppendIntNegOpt(dst []byte, magnitude Optional[uint64]) []byte {
	m, ok := magnitude.Get()
	if !ok {
		return appendShort(dst, format.TagIntNeg, nil)
	}

	return AppendIntNeg(dst, m)
}

// AppendInt appends the encoding of a signed integer to dst, choosing the
// positive or negative tag by sign.
func AppendInt(dst []byte, v int64) []byte {
	if v >= 0 {
		return AppendIntPos(dst, uint64(v))
	}

	return AppendIntNeg(dst, negMagnitude(v))
}

// AppendIntOpt appends the encoding of an optional signed integer to dst.
// An absent value is written under the positive tag as 0x20.
func AppendIntOpt(dst []byte, v Optional[int64]) []byte {
	i, ok := v.Get()
	if !ok {
		return appendShort(dst, format.TagIntPos, nil)
	}

	return AppendInt(dst, i)
}

// negMagnitude returns |v| for v < 0. It holds for math.MinInt64, whose
// magnitude does not fit in an int64.
func negMagnitude(v int64) uint64 {
	return uint64(^v) + 1
}
