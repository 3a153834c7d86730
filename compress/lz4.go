package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool reuses lz4.Compressor hash tables across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxExpansion is the most an LZ4 block can expand its input.
const lz4MaxExpansion = 255

// LZ4Compressor compresses blocks with the LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: ErrIncompressible when LZ4 cannot shrink the input, or a compression error
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrIncompressible
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block.
//
// The block format does not record the decoded size, so the output buffer
// starts at four times the input and doubles on lz4.ErrInvalidSourceShortBuffer.
// LZ4 cannot expand input by more than about 255x, so the buffer stops growing
// there (or at the package decode limit) and the input is reported as corrupt.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := min(maxDecodedSize, len(data)*lz4MaxExpansion+64)
	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || bufSize >= limit {
			return nil, err
		}
		bufSize = min(bufSize*2, limit)
	}
}

// DecompressSize decodes one LZ4 block into a buffer of exactly size bytes.
// A block that needs more room fails with ErrSizeMismatch.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if out, done, err := checkSizedInput(data, size); done {
		return out, err
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, fmt.Errorf("%w: lz4 block exceeds %d bytes", ErrSizeMismatch, size)
	}
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: lz4 block decoded to %d bytes, want %d", ErrSizeMismatch, n, size)
	}

	return buf, nil
}
