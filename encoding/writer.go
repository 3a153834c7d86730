package encoding

import (
	"fmt"
	"io"

	"github.com/arloliu/tagpack/errs"
)

// Writer encodes values to a byte sink.
//
// Each value is one record: a header byte followed by zero to eight payload
// bytes. The Writer builds the record in a scratch buffer and hands it to the
// sink in a single Write call, so the sink always sees header and payload
// together and in order.
//
// Writer keeps no state between calls apart from the sink and the scratch
// buffer. It is not safe for concurrent use; two Writers must not share a sink
// without external serialization.
//
// When the sink fails, the error is returned wrapping both errs.ErrSinkWrite
// and the sink's own error. The Writer does not retry, and the stream must be
// treated as corrupt from that record on.
type Writer struct {
	w       io.Writer
	scratch []byte
}

// NewWriter creates a Writer that encodes into w.
//
// Parameters:
//   - w: Byte sink receiving encoded records
//
// Returns:
//   - *Writer: A new writer ready for encoding
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       w,
		scratch: make([]byte, 0, MaxRecordSize),
	}
}

// Reset switches the Writer to a new sink.
func (w *Writer) Reset(sink io.Writer) {
	w.w = sink
}

// WriteBool writes a boolean.
func (w *Writer) WriteBool(v bool) error {
	return w.emit(AppendBool(w.scratch[:0], v))
}

// WriteBoolOpt writes an optional boolean.
func (w *Writer) WriteBoolOpt(v Optional[bool]) error {
	return w.emit(AppendBoolOpt(w.scratch[:0], v))
}

// WriteIntPos writes a non-negative integer.
func (w *Writer) WriteIntPos(v uint64) error {
	return w.emit(AppendIntPos(w.scratch[:0], v))
}

// WriteIntPosOpt writes an optional non-negative integer.
func (w *Writer) WriteIntPosOpt(v Optional[uint64]) error {
	return w.emit(AppendIntPosOpt(w.scratch[:0], v))
}

// WriteIntNeg writes the negative integer -magnitude.
//
// A zero magnitude is a programming error: WriteIntNeg panics with
// errs.ErrNegativeZero and the sink receives nothing.
func (w *Writer) WriteIntNeg(magnitude uint64) error {
	return w.emit(AppendIntNeg(w.scratch[:0], magnitude))
}

// WriteIntNegOpt writes an optional negative magnitude.
func (w *Writer) WriteIntNegOpt(magnitude Optional[uint64]) error {
	return w.emit(AppendIntNegOpt(w.scratch[:0], magnitude))
}

// WriteInt writes a signed integer.
func (w *Writer) WriteInt(v int64) error {
	return w.emit(AppendInt(w.scratch[:0], v))
}

// WriteIntOpt writes an optional signed integer. An absent value uses the
// positive integer tag.
func (w *Writer) WriteIntOpt(v Optional[int64]) error {
	return w.emit(AppendIntOpt(w.scratch[:0], v))
}

// WriteValue writes v using the encoding that matches its dynamic type.
// See AppendValue for the supported types.
func (w *Writer) WriteValue(v any) error {
	record, err := AppendValue(w.scratch[:0], v)
	if err != nil {
		return err
	}

	return w.emit(record)
}

func (w *Writer) emit(record []byte) error {
	n, err := w.w.Write(record)
	if err == nil && n < len(record) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkWrite, err)
	}

	return nil
}
