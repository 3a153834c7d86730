package encoding

import (
	"bytes"
	"testing"

	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
	"github.com/stretchr/testify/require"
)

func TestAppendTiny(t *testing.T) {
	require.Equal(t, []byte{0x11}, appendTiny(nil, format.TagBoolean, 1))
	require.Equal(t, []byte{0xAA, 0xF0}, appendTiny([]byte{0xAA}, format.TagExtended, 0))
}

func TestAppendShort(t *testing.T) {
	require.Equal(t, []byte{0x20}, appendShort(nil, format.TagIntPos, nil))
	require.Equal(t, []byte{0x32, 0x01, 0x00}, appendShort(nil, format.TagIntNeg, []byte{0x01, 0x00}))

	payload := bytes.Repeat([]byte{0x5A}, format.MaxNibble)
	out := appendShort(nil, format.TagBytes, payload)
	require.Equal(t, byte(0x0F), out[0])
	require.Equal(t, payload, out[1:])
}

func TestHeaderPrimitives_ContractViolation(t *testing.T) {
	tests := []struct {
		name string
		fn   func() []byte
		want error
	}{
		{
			name: "tiny tag overflow",
			fn:   func() []byte { return appendTiny(nil, format.Tag(0x10), 0) },
			want: errs.ErrTagOverflow,
		},
		{
			name: "tiny value overflow",
			fn:   func() []byte { return appendTiny(nil, format.TagBoolean, 0x10) },
			want: errs.ErrNibbleOverflow,
		},
		{
			name: "short tag overflow",
			fn:   func() []byte { return appendShort(nil, format.Tag(0x1F), []byte{0x01}) },
			want: errs.ErrTagOverflow,
		},
		{
			name: "short payload too long",
			fn:   func() []byte { return appendShort(nil, format.TagIntPos, make([]byte, 16)) },
			want: errs.ErrPayloadTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []byte
			err := recoverError(func() { out = tt.fn() })
			require.ErrorIs(t, err, tt.want)
			require.Nil(t, out)
		})
	}
}
