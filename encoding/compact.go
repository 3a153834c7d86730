package encoding

import "math/bits"

// MaxCompactLen is the length of the longest compacted integer payload.
const MaxCompactLen = 8

// Compacted holds the minimal big-endian representation of a uint64.
//
// The bytes live in a fixed array, so compacting a value never allocates.
type Compacted struct {
	buf [MaxCompactLen]byte
	n   uint8
}

// Compact returns the fewest big-endian bytes that represent m, with a
// minimum of one byte: 0 compacts to [0x00] and math.MaxUint64 to eight 0xFF
// bytes.
//
// Parameters:
//   - m: Unsigned magnitude to compact
//
// Returns:
//   - Compacted: 1-8 bytes, most significant first
func Compact(m uint64) Compacted {
	var c Compacted

	// whole bytes only, rounding the leading zero bits down
	full := MaxCompactLen - bits.LeadingZeros64(m)/8
	for i := range full {
		shift := 8 * (full - 1 - i)
		c.buf[i] = byte((m & (0xFF << shift)) >> shift)
	}
	c.n = uint8(max(1, full))

	return c
}

// CompactLen returns the length Compact(m) would produce without building it.
func CompactLen(m uint64) int {
	return max(1, MaxCompactLen-bits.LeadingZeros64(m)/8)
}

// Bytes returns the compacted bytes. The slice aliases c.
func (c *Compacted) Bytes() []byte {
	return c.buf[:c.n]
}

// Len returns the number of compacted bytes, 1-8.
func (c *Compacted) Len() int {
	return int(c.n)
}
