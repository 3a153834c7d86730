package sink

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/tagpack/compress"
	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/internal/hash"
	"github.com/arloliu/tagpack/section"
)

// Block is one decoded frame.
type Block struct {
	// Header is the parsed frame header as stored.
	Header section.BlockHeader
	// Records holds the raw, uncompressed record bytes of the block.
	Records []byte
}

// BlockReader reads frames written by BlockWriter.
type BlockReader struct {
	r   io.Reader
	hdr [section.BlockHeaderSize]byte
}

// NewBlockReader creates a BlockReader over r.
func NewBlockReader(r io.Reader) *BlockReader {
	return &BlockReader{r: r}
}

// Next reads the next frame.
//
// Returns:
//   - Block: The frame header and its raw record bytes
//   - error: io.EOF at a clean end of stream, errs.ErrTruncatedBlock when the
//     stream ends inside a frame, or a header, checksum or decompression error
func (br *BlockReader) Next() (Block, error) {
	if _, err := io.ReadFull(br.r, br.hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Block{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Block{}, fmt.Errorf("%w: header", errs.ErrTruncatedBlock)
		}

		return Block{}, err
	}

	var header section.BlockHeader
	if err := header.Parse(br.hdr[:]); err != nil {
		return Block{}, err
	}

	body := make([]byte, header.FrameSize()-section.BlockHeaderSize)
	if _, err := io.ReadFull(br.r, body); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Block{}, fmt.Errorf("%w: want %d body bytes", errs.ErrTruncatedBlock, len(body))
		}

		return Block{}, err
	}

	return decodeBody(header, body)
}

// All iterates over the remaining frames. Iteration stops after the first
// error, which is yielded with a zero Block; a clean end of stream is not
// reported as an error.
func (br *BlockReader) All() iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		for {
			block, err := br.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(block, err) || err != nil {
				return
			}
		}
	}
}

// ReadBlock decodes the frame at the start of data.
//
// For uncompressed frames the returned Records alias data.
//
// Returns:
//   - Block: The decoded frame
//   - int: Number of bytes of data the frame occupies
//   - error: errs.ErrTruncatedBlock when data ends inside the frame, or a
//     header, checksum or decompression error
func ReadBlock(data []byte) (Block, int, error) {
	if len(data) < section.BlockHeaderSize {
		return Block{}, 0, fmt.Errorf("%w: header", errs.ErrTruncatedBlock)
	}

	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return Block{}, 0, err
	}

	size := header.FrameSize()
	if len(data) < size {
		return Block{}, 0, fmt.Errorf("%w: want %d bytes, have %d", errs.ErrTruncatedBlock, size, len(data))
	}

	block, err := decodeBody(header, data[section.BlockHeaderSize:size])
	if err != nil {
		return Block{}, 0, err
	}

	return block, size, nil
}

func decodeBody(header section.BlockHeader, body []byte) (Block, error) {
	payload := body[:header.PayloadSize]

	codec, err := compress.CreateCodec(header.Flag.CompressionType(), "block")
	if err != nil {
		return Block{}, err
	}

	// RawSize is validated against MaxBlockSize by Parse, and the codec never
	// decodes past it.
	raw, err := codec.DecompressSize(payload, int(header.RawSize))
	if errors.Is(err, compress.ErrSizeMismatch) {
		return Block{}, fmt.Errorf("%w: %w", errs.ErrInvalidBlockSize, err)
	}
	if err != nil {
		return Block{}, fmt.Errorf("failed to decompress block: %w", err)
	}

	if header.Flag.HasChecksum() {
		want := header.Flag.GetEndianEngine().Uint64(body[header.PayloadSize:])
		if !hash.Verify(raw, want) {
			return Block{}, errs.ErrChecksumMismatch
		}
	}

	return Block{Header: header, Records: raw}, nil
}
