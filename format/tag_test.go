package format

import (
	"errors"
	"testing"

	"github.com/arloliu/tagpack/errs"
	"github.com/stretchr/testify/require"
)

func TestTagTable(t *testing.T) {
	tests := []struct {
		tag  Tag
		want uint8
		name string
	}{
		{TagBytes, 0x0, "Bytes"},
		{TagBoolean, 0x1, "Boolean"},
		{TagIntPos, 0x2, "IntPos"},
		{TagIntNeg, 0x3, "IntNeg"},
		{TagFloat, 0x4, "Float"},
		{TagUTF8, 0x5, "UTF8"},
		{TagUTF8Short, 0x6, "UTF8Short"},
		{TagUTCDateTime, 0x7, "UTCDateTime"},
		{TagArray, 0xA, "Array"},
		{TagTable, 0xB, "Table"},
		{TagObject, 0xC, "Object"},
		{TagKey, 0xD, "Key"},
		{TagKeyShort, 0xE, "KeyShort"},
		{TagExtended, 0xF, "Extended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, uint8(tt.tag))
			require.Equal(t, tt.name, tt.tag.String())
			require.True(t, tt.tag.Valid())
		})
	}

	require.False(t, Tag(0x10).Valid())
	require.Equal(t, "Tag(0x8)", Tag(0x8).String())
}

func TestHeader(t *testing.T) {
	require.Equal(t, byte(0x11), Header(TagBoolean, 1))
	require.Equal(t, byte(0x20), Header(TagIntPos, 0))
	require.Equal(t, byte(0x38), Header(TagIntNeg, 8))
	require.Equal(t, byte(0xFF), Header(TagExtended, MaxNibble))

	for b := 0; b <= 0xFF; b++ {
		h := byte(b)
		require.Equal(t, h, Header(TagOf(h), NibbleOf(h)))
	}
}

func TestHeader_ContractViolation(t *testing.T) {
	t.Run("tag overflow", func(t *testing.T) {
		err := recoverError(func() { Header(Tag(0x10), 0) })
		require.ErrorIs(t, err, errs.ErrTagOverflow)
	})

	t.Run("nibble overflow", func(t *testing.T) {
		err := recoverError(func() { Header(TagBoolean, 0x10) })
		require.ErrorIs(t, err, errs.ErrNibbleOverflow)
	})
}

func TestCompressionType(t *testing.T) {
	for _, name := range []string{"none", "zstd", "s2", "lz4"} {
		c, ok := ParseCompressionType(name)
		require.True(t, ok, name)
		require.True(t, c.Valid(), name)
	}

	c, ok := ParseCompressionType("")
	require.True(t, ok)
	require.Equal(t, CompressionNone, c)

	_, ok = ParseCompressionType("gzip")
	require.False(t, ok)

	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
}

func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			err = errors.New("panic value is not an error")
			return
		}
		err = e
	}()
	fn()

	return nil
}
