package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/tagpack/format"
)

var (
	// ErrIncompressible is returned by a Compressor that cannot shrink its input.
	ErrIncompressible = errors.New("compress: input is incompressible")
	// ErrSizeMismatch is returned by DecompressSize when the payload does not
	// expand to the expected size.
	ErrSizeMismatch = errors.New("compress: decompressed size mismatch")
)

// maxDecodedSize bounds any single decompression, sized or not.
const maxDecodedSize = 64 * 1024 * 1024

// Compressor compresses a block payload.
//
// The returned slice is owned by the caller and the input is not modified.
// Compressing empty input returns nil.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupt input or input from another algorithm yields an error.
// Decompressing empty input returns nil.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)

	// DecompressSize restores a payload whose decoded size is known up front.
	// The output buffer is allocated once with size bytes and decoding stops
	// with ErrSizeMismatch as soon as the payload would exceed it, or when it
	// decodes to fewer bytes.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats accumulates the sizes seen by a compressing writer.
type CompressionStats struct {
	// Algorithm is the configured compression type.
	Algorithm format.CompressionType
	// Blocks is the number of blocks written.
	Blocks int64
	// StoredBlocks counts blocks kept uncompressed because compression did not help.
	StoredBlocks int64
	// OriginalSize is the total size of the payloads before compression.
	OriginalSize int64
	// CompressedSize is the total size of the payloads as written.
	CompressedSize int64
}

// CompressionRatio returns CompressedSize / OriginalSize, or 0 when nothing
// was written. Values below 1.0 mean the codec saved space.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of OriginalSize.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns the Codec for compressionType.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: What the codec is for, used in the error message
//
// Returns:
//   - Codec: Codec for the requested type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	codec, ok := builtinCodecs[compressionType]
	if !ok {
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}

	return codec, nil
}

// checkSizedInput handles the cases shared by every DecompressSize
// implementation. done reports that out, err is the final result.
func checkSizedInput(data []byte, size int) (out []byte, done bool, err error) {
	switch {
	case size < 0 || size > maxDecodedSize:
		return nil, true, fmt.Errorf("%w: invalid size %d", ErrSizeMismatch, size)
	case len(data) == 0 && size == 0:
		return nil, true, nil
	case len(data) == 0 || size == 0:
		return nil, true, fmt.Errorf("%w: %d payload bytes for %d decoded bytes", ErrSizeMismatch, len(data), size)
	default:
		return nil, false, nil
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}
