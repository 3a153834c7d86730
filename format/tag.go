// Package format defines the tag table and enum types of the tagpack wire format.
//
// Every encoded value starts with a header byte. The upper nibble holds a Tag,
// the lower nibble holds either an inline value (booleans) or the byte length
// of the payload that follows (integers):
//
//	 7   6   5   4   3   2   1   0
//	┌───────────────┬───────────────┐
//	│      tag      │    nibble     │
//	└───────────────┴───────────────┘
//
// Only TagBoolean, TagIntPos and TagIntNeg have encoders. The remaining tags
// are reserved so that a companion decoder sees a stable tag space; no length
// scheme is defined for them.
package format

import (
	"fmt"

	"github.com/arloliu/tagpack/errs"
)

// Tag is the 4-bit type discriminator stored in the upper nibble of a header byte.
type Tag uint8

const (
	TagBytes       Tag = 0x0 // TagBytes is reserved for raw byte strings.
	TagBoolean     Tag = 0x1 // TagBoolean carries the boolean code inline.
	TagIntPos      Tag = 0x2 // TagIntPos is a non-negative integer, also the shared "no value" marker.
	TagIntNeg      Tag = 0x3 // TagIntNeg is a strictly negative integer stored as magnitude-1.
	TagFloat       Tag = 0x4 // TagFloat is reserved for floating-point values.
	TagUTF8        Tag = 0x5 // TagUTF8 is reserved for UTF-8 strings.
	TagUTF8Short   Tag = 0x6 // TagUTF8Short is reserved for short UTF-8 strings.
	TagUTCDateTime Tag = 0x7 // TagUTCDateTime is reserved for UTC timestamps.

	TagArray    Tag = 0xA // TagArray is reserved for arrays.
	TagTable    Tag = 0xB // TagTable is reserved for tables.
	TagObject   Tag = 0xC // TagObject is reserved for objects.
	TagKey      Tag = 0xD // TagKey is reserved for object keys.
	TagKeyShort Tag = 0xE // TagKeyShort is reserved for short object keys.
	TagExtended Tag = 0xF // TagExtended is reserved as an escape to an extended tag space.
)

const (
	// MaxNibble is the largest value that fits in either half of a header byte.
	MaxNibble = 0x0F

	tagShift   = 4
	nibbleMask = 0x0F
)

// Valid reports whether the tag fits in four bits.
func (t Tag) Valid() bool {
	return t <= MaxNibble
}

func (t Tag) String() string {
	switch t {
	case TagBytes:
		return "Bytes"
	case TagBoolean:
		return "Boolean"
	case TagIntPos:
		return "IntPos"
	case TagIntNeg:
		return "IntNeg"
	case TagFloat:
		return "Float"
	case TagUTF8:
		return "UTF8"
	case TagUTF8Short:
		return "UTF8Short"
	case TagUTCDateTime:
		return "UTCDateTime"
	case TagArray:
		return "Array"
	case TagTable:
		return "Table"
	case TagObject:
		return "Object"
	case TagKey:
		return "Key"
	case TagKeyShort:
		return "KeyShort"
	case TagExtended:
		return "Extended"
	default:
		return fmt.Sprintf("Tag(%#x)", uint8(t))
	}
}

// Header packs a tag and a nibble into a header byte.
//
// A tag or nibble wider than four bits is a programming error: Header panics
// with an error wrapping errs.ErrTagOverflow or errs.ErrNibbleOverflow instead
// of producing a byte that would corrupt the rest of the stream.
//
// Parameters:
//   - tag: Type tag, 0-15
//   - nibble: Inline value or payload length, 0-15
//
// Returns:
//   - byte: tag<<4 | nibble
func Header(tag Tag, nibble uint8) byte {
	if !tag.Valid() {
		panic(fmt.Errorf("%w: %#x", errs.ErrTagOverflow, uint8(tag)))
	}
	if nibble > MaxNibble {
		panic(fmt.Errorf("%w: %#x", errs.ErrNibbleOverflow, nibble))
	}

	return byte(tag)<<tagShift | nibble
}

// TagOf returns the tag stored in the upper nibble of a header byte.
func TagOf(header byte) Tag {
	return Tag(header >> tagShift)
}

// NibbleOf returns the inline value or payload length stored in the lower nibble.
func NibbleOf(header byte) uint8 {
	return header & nibbleMask
}
