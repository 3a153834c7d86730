package encoding

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/arloliu/tagpack/errs"
	"github.com/stretchr/testify/require"
)

func TestWriter_Bool(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteBool(false))
	require.NoError(t, w.WriteBoolOpt(None[bool]()))

	require.Equal(t, []byte{0x11, 0x12, 0x10}, buf.Bytes())
}

func TestWriter_IntPos(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteIntPos(0))
	require.NoError(t, w.WriteIntPos(math.MaxUint64))
	require.NoError(t, w.WriteIntPos(0x1234))
	require.NoError(t, w.WriteIntPosOpt(None[uint64]()))

	require.Equal(t, []byte{
		0x21, 0x00,
		0x28, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x22, 0x12, 0x34,
		0x20,
	}, buf.Bytes())
}

func TestWriter_IntNeg(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteIntNeg(1))
	require.NoError(t, w.WriteIntNeg(0x1234))
	require.NoError(t, w.WriteIntNegOpt(None[uint64]()))

	require.Equal(t, []byte{
		0x31, 0x00,
		0x32, 0x12, 0x33,
		0x30,
	}, buf.Bytes())
}

func TestWriter_IntNeg_ZeroMagnitude(t *testing.T) {
	rec := &recordingWriter{}
	w := NewWriter(rec)

	err := recoverError(func() { _ = w.WriteIntNeg(0) })
	require.ErrorIs(t, err, errs.ErrNegativeZero)
	require.Empty(t, rec.chunks, "no bytes may reach the sink")

	err = recoverError(func() { _ = w.WriteIntNegOpt(Some[uint64](0)) })
	require.ErrorIs(t, err, errs.ErrNegativeZero)
	require.Empty(t, rec.chunks)
}

func TestWriter_Int(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteInt(0x01020304))
	require.NoError(t, w.WriteInt(-1))
	require.NoError(t, w.WriteInt(-257))
	require.NoError(t, w.WriteIntOpt(None[int64]()))

	require.Equal(t, []byte{
		0x24, 0x01, 0x02, 0x03, 0x04,
		0x31, 0x00,
		0x32, 0x01, 0x00,
		0x20,
	}, buf.Bytes())
}

func TestWriter_Int_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  []byte
	}{
		{"zero", 0, []byte{0x21, 0x00}},
		{"one", 1, []byte{0x21, 0x01}},
		{"minus 256", -256, []byte{0x31, 0xFF}},
		{"max int64", math.MaxInt64, []byte{0x28, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"min int64", math.MinInt64, []byte{0x38, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewWriter(&buf).WriteInt(tt.value))
			require.Equal(t, tt.want, buf.Bytes())
			require.Equal(t, len(tt.want), IntSize(tt.value))
		})
	}
}

func TestWriter_IntOpt_Present(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteIntOpt(Some[int64](-1)))
	require.NoError(t, w.WriteIntOpt(Some[int64](0x1234)))
	require.NoError(t, w.WriteIntPosOpt(Some[uint64](7)))
	require.NoError(t, w.WriteBoolOpt(Some(true)))

	require.Equal(t, []byte{0x31, 0x00, 0x22, 0x12, 0x34, 0x21, 0x07, 0x11}, buf.Bytes())
}

func TestWriter_OneWritePerRecord(t *testing.T) {
	rec := &recordingWriter{}
	w := NewWriter(rec)

	require.NoError(t, w.WriteIntPos(0x1234))
	require.NoError(t, w.WriteBool(false))
	require.NoError(t, w.WriteInt(-257))

	require.Equal(t, [][]byte{
		{0x22, 0x12, 0x34},
		{0x12},
		{0x32, 0x01, 0x00},
	}, rec.chunks)
}

func TestWriter_SinkFailure(t *testing.T) {
	cause := errors.New("disk full")
	w := NewWriter(failingWriter{err: cause})

	err := w.WriteBool(true)
	require.ErrorIs(t, err, errs.ErrSinkWrite)
	require.ErrorIs(t, err, cause)

	err = w.WriteInt(-257)
	require.ErrorIs(t, err, errs.ErrSinkWrite)
	require.ErrorIs(t, err, cause)
}

func TestWriter_ShortWrite(t *testing.T) {
	w := NewWriter(shortWriter{})

	err := w.WriteIntPos(0x1234)
	require.ErrorIs(t, err, errs.ErrSinkWrite)
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestWriter_Reset(t *testing.T) {
	var first, second bytes.Buffer
	w := NewWriter(&first)

	require.NoError(t, w.WriteBool(true))
	w.Reset(&second)
	require.NoError(t, w.WriteBool(false))

	require.Equal(t, []byte{0x11}, first.Bytes())
	require.Equal(t, []byte{0x12}, second.Bytes())
}
