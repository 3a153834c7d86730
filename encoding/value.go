package encoding

import (
	"fmt"

	"github.com/arloliu/tagpack/errs"
)

// AppendValue appends the encoding of v to dst based on its dynamic type.
//
// Supported types:
//   - nil: absent integer (0x20)
//   - bool, *bool, Optional[bool]: boolean, nil pointer is absent (0x10)
//   - int, int8, int16, int32, int64: signed integer
//   - uint, uint8, uint16, uint32, uint64: non-negative integer
//   - *int64, Optional[int64]: optional signed integer
//   - *uint64, Optional[uint64]: optional non-negative integer
//
// Any other type returns dst unchanged and an error wrapping
// errs.ErrUnsupportedValue.
func AppendValue(dst []byte, v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return AppendIntOpt(dst, None[int64]()), nil
	case bool:
		return AppendBool(dst, x), nil
	case *bool:
		return AppendBoolOpt(dst, OptionalOf(x)), nil
	case Optional[bool]:
		return AppendBoolOpt(dst, x), nil
	case int:
		return AppendInt(dst, int64(x)), nil
	case int8:
		return AppendInt(dst, int64(x)), nil
	case int16:
		return AppendInt(dst, int64(x)), nil
	case int32:
		return AppendInt(dst, int64(x)), nil
	case int64:
		return AppendInt(dst, x), nil
	case *int64:
		return AppendIntOpt(dst, OptionalOf(x)), nil
	case Optional[int64]:
		return AppendIntOpt(dst, x), nil
	case uint:
		return AppendIntPos(dst, uint64(x)), nil
	case uint8:
		return AppendIntPos(dst, uint64(x)), nil
	case uint16:
		return AppendIntPos(dst, uint64(x)), nil
	case uint32:
		return AppendIntPos(dst, uint64(x)), nil
	case uint64:
		return AppendIntPos(dst, x), nil
	case *uint64:
		return AppendIntPosOpt(dst, OptionalOf(x)), nil
	case Optional[uint64]:
		return AppendIntPosOpt(dst, x), nil
	default:
		return dst, fmt.Errorf("%w: %T", errs.ErrUnsupportedValue, v)
	}
}
