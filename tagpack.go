// Package tagpack provides a compact, self-describing binary encoding for
// booleans and integers.
//
// Every value starts with a header byte: the upper nibble is a type tag and
// the lower nibble either holds a small value inline or gives the length of
// the payload that follows. Integers are stored as the fewest big-endian
// bytes that hold them, and an absent optional value costs a single byte.
//
//	true            -> 11
//	0x1234          -> 22 12 34
//	-257            -> 32 01 00
//	absent integer  -> 20
//
// # Basic Usage
//
// Encoding into a byte slice:
//
//	data, err := tagpack.Encode(func(w *encoding.Writer) error {
//	    if err := w.WriteBool(true); err != nil {
//	        return err
//	    }
//	    return w.WriteIntOpt(encoding.None[int64]())
//	})
//
// Streaming into framed, compressed blocks:
//
//	bw, _ := tagpack.NewBlockWriter(file, sink.WithCompression(format.CompressionZstd))
//	w := tagpack.NewWriter(bw)
//	_ = w.WriteInt(-42)
//	_ = bw.Close()
//
// # Package Structure
//
// This package wraps the lower level packages for the common cases:
//   - encoding: the value encoder, append helpers and Optional
//   - format: the tag table and header byte helpers
//   - sink: block framing with compression and checksums
//   - compress: the block payload codecs
package tagpack

import (
	"io"

	"github.com/arloliu/tagpack/encoding"
	"github.com/arloliu/tagpack/internal/pool"
	"github.com/arloliu/tagpack/sink"
)

// NewWriter creates an encoder that writes records to w.
//
// Each record reaches w in a single Write call.
func NewWriter(w io.Writer) *encoding.Writer {
	return encoding.NewWriter(w)
}

// Encode runs fn against an encoder backed by a pooled buffer and returns a
// copy of the encoded bytes.
//
// Parameters:
//   - fn: Callback issuing the writes
//
// Returns:
//   - []byte: Encoded records, owned by the caller
//   - error: The first error returned by fn
func Encode(fn func(w *encoding.Writer) error) ([]byte, error) {
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	if err := fn(encoding.NewWriter(buf)); err != nil {
		return nil, err
	}

	return buf.Clone(), nil
}

// NewBlockWriter creates a block sink that frames records written to it.
//
// Parameters:
//   - w: Destination of the framed blocks
//   - opts: Optional frame configuration (see sink.BlockOption)
//
// Returns:
//   - *sink.BlockWriter: The created block writer
//   - error: An error if the configuration is invalid
//
// Available options:
//   - sink.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - sink.WithBlockSize(n)
//   - sink.WithChecksum(true|false)
//   - sink.WithLittleEndian() / sink.WithBigEndian()
func NewBlockWriter(w io.Writer, opts ...sink.BlockOption) (*sink.BlockWriter, error) {
	return sink.NewBlockWriter(w, opts...)
}

// NewBlockReader creates a reader for streams produced by a BlockWriter.
func NewBlockReader(r io.Reader) *sink.BlockReader {
	return sink.NewBlockReader(r)
}
