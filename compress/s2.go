package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses blocks with S2, a faster Snappy extension.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: ErrIncompressible when the S2 block is not smaller than data
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	compressed := s2.Encode(make([]byte, s2.MaxEncodedLen(len(data))), data)
	if len(compressed) >= len(data) {
		return nil, ErrIncompressible
	}

	return compressed, nil
}

// Decompress decodes a single S2 block. The decoded length stored in the
// block preamble must not exceed the package decode limit.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > maxDecodedSize {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes", ErrSizeMismatch, n)
	}

	return s2.Decode(make([]byte, n), data)
}

// DecompressSize decodes a single S2 block after checking that its preamble
// declares exactly size bytes.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if out, done, err := checkSizedInput(data, size); done {
		return out, err
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, want %d", ErrSizeMismatch, n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
