package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/tagpack/compress"
	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
	"github.com/arloliu/tagpack/internal/hash"
	"github.com/arloliu/tagpack/internal/options"
	"github.com/arloliu/tagpack/internal/pool"
	"github.com/arloliu/tagpack/section"
)

// BlockWriter groups records into framed, optionally compressed blocks.
//
// Every Write call is treated as one record and is never split. A block is
// flushed when adding the next record would push it past the block size,
// when it reaches the block size, and on Flush or Close. A single record
// larger than the block size gets a block of its own.
//
// Close flushes the pending block but does not close the underlying writer.
type BlockWriter struct {
	*BlockWriterConfig
	w       io.Writer
	buf     *pool.ByteBuffer
	frame   *pool.ByteBuffer
	records uint32
	stats   compress.CompressionStats
	closed  bool
}

var _ io.WriteCloser = (*BlockWriter)(nil)

// NewBlockWriter creates a BlockWriter that emits frames to w.
//
// Parameters:
//   - w: Destination of the framed blocks
//   - opts: Optional frame configuration (compression, block size, checksum, endianness)
//
// Returns:
//   - *BlockWriter: New writer instance
//   - error: Configuration error if invalid options provided
func NewBlockWriter(w io.Writer, opts ...BlockOption) (*BlockWriter, error) {
	config := NewBlockWriterConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}
	if err := config.setCodec(); err != nil {
		return nil, err
	}

	return &BlockWriter{
		BlockWriterConfig: config,
		w:                 w,
		buf:               pool.GetBlockBuffer(),
		frame:             pool.GetBlockBuffer(),
		stats:             compress.CompressionStats{Algorithm: config.flag.CompressionType()},
	}, nil
}

// Write buffers p as one record.
func (bw *BlockWriter) Write(p []byte) (int, error) {
	if bw.closed {
		return 0, errs.ErrWriterClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if len(p) > section.MaxBlockSize {
		return 0, fmt.Errorf("%w: record of %d bytes", errs.ErrInvalidBlockSize, len(p))
	}

	if bw.buf.Len() > 0 && bw.buf.Len()+len(p) > bw.blockSize {
		if err := bw.Flush(); err != nil {
			return 0, err
		}
	}

	_, _ = bw.buf.Write(p)
	bw.records++

	if bw.buf.Len() >= bw.blockSize {
		if err := bw.Flush(); err != nil {
			return len(p), err
		}
	}

	return len(p), nil
}

// Buffered returns the number of record bytes waiting for the next flush.
func (bw *BlockWriter) Buffered() int {
	if bw.closed {
		return 0
	}

	return bw.buf.Len()
}

// Flush writes the pending records as one block. It is a no-op when nothing
// is buffered. The pending block is discarded even when the write fails.
func (bw *BlockWriter) Flush() error {
	if bw.closed {
		return errs.ErrWriterClosed
	}
	if bw.buf.Len() == 0 {
		return nil
	}

	defer func() {
		bw.buf.Reset()
		bw.records = 0
	}()

	raw := bw.buf.Bytes()
	header := section.NewBlockHeader(bw.flag)
	header.RawSize = uint32(len(raw)) //nolint:gosec
	header.RecordCount = bw.records

	payload, err := bw.compressBlock(header, raw)
	if err != nil {
		return err
	}
	header.PayloadSize = uint32(len(payload)) //nolint:gosec

	bw.frame.Reset()
	bw.frame.Grow(header.FrameSize())
	bw.frame.B = header.AppendTo(bw.frame.B)
	bw.frame.B = append(bw.frame.B, payload...)
	if header.Flag.HasChecksum() {
		bw.frame.B = header.Flag.GetEndianEngine().AppendUint64(bw.frame.B, hash.Checksum(raw))
	}

	n, err := bw.frame.WriteTo(bw.w)
	if err == nil && n < int64(bw.frame.Len()) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkWrite, err)
	}

	bw.stats.Blocks++
	bw.stats.OriginalSize += int64(len(raw))
	bw.stats.CompressedSize += int64(len(payload))

	return nil
}

// compressBlock returns the payload for raw. Blocks that do not shrink are
// stored uncompressed and the header is switched to CompressionNone.
func (bw *BlockWriter) compressBlock(header *section.BlockHeader, raw []byte) ([]byte, error) {
	if header.Flag.CompressionType() == format.CompressionNone {
		return raw, nil
	}

	compressed, err := bw.codec.Compress(raw)
	if err != nil && !errors.Is(err, compress.ErrIncompressible) {
		return nil, fmt.Errorf("failed to compress block: %w", err)
	}
	if err != nil || len(compressed) >= len(raw) {
		header.Flag.SetCompressionType(format.CompressionNone)
		bw.stats.StoredBlocks++

		return raw, nil
	}

	return compressed, nil
}

// Close flushes the pending block and releases the buffers. Further writes
// return errs.ErrWriterClosed. Closing twice is a no-op.
func (bw *BlockWriter) Close() error {
	if bw.closed {
		return nil
	}

	err := bw.Flush()

	bw.closed = true
	pool.PutBlockBuffer(bw.buf)
	pool.PutBlockBuffer(bw.frame)
	bw.buf, bw.frame = nil, nil

	return err
}

// Stats returns the compression statistics of the blocks written so far.
func (bw *BlockWriter) Stats() compress.CompressionStats {
	return bw.stats
}
