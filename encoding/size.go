package encoding

import "github.com/arloliu/tagpack/errs"

const (
	// AbsentSize is the encoded size of any absent value.
	AbsentSize = 1
	// BoolSize is the encoded size of a boolean, present or absent.
	BoolSize = 1
	// MaxRecordSize is the largest encoded size of a single value.
	MaxRecordSize = 1 + MaxCompactLen
)

// IntPosSize returns the encoded size of a non-negative integer.
func IntPosSize(v uint64) int {
	return 1 + CompactLen(v)
}

// IntNegSize returns the encoded size of the negative integer -magnitude.
// It panics with errs.ErrNegativeZero when magnitude is zero.
func IntNegSize(magnitude uint64) int {
	if magnitude == 0 {
		panic(errs.ErrNegativeZero)
	}

	return 1 + CompactLen(magnitude-1)
}

// IntSize returns the encoded size of a signed integer.
func IntSize(v int64) int {
	if v >= 0 {
		return IntPosSize(uint64(v))
	}

	return IntNegSize(negMagnitude(v))
}
