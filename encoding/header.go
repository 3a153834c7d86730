package encoding

import (
	"fmt"

	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
)

// appendTiny appends a single header byte carrying value inline.
//
// Both tag and value must fit in four bits; format.Header panics otherwise,
// before anything is appended.
func appendTiny(dst []byte, tag format.Tag, value uint8) []byte {
	return append(dst, format.Header(tag, value))
}

// appendShort appends a header byte whose nibble is len(payload), followed by
// the payload itself.
func appendShort(dst []byte, tag format.Tag, payload []byte) []byte {
	if len(payload) > format.MaxNibble {
		panic(fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLong, len(payload)))
	}

	dst = append(dst, format.Header(tag, uint8(len(payload))))

	return append(dst, payload...)
}
