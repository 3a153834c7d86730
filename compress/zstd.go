package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstd encoders and decoders are built to be reused after warm-up, so both
// are pooled. EncodeAll and DecodeAll are stateless per call.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false), // the block frame carries its own checksum
			)
			if err != nil {
				panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
			}

			return encoder
		},
	}

	zstdDecoderPool = sync.Pool{
		New: func() any {
			return newZstdDecoder(false)
		},
	}

	// zstdSizedDecoderPool holds decoders that never write past cap(dst).
	zstdSizedDecoderPool = sync.Pool{
		New: func() any {
			return newZstdDecoder(true)
		},
	}
)

func newZstdDecoder(capLimit bool) *zstd.Decoder {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
		zstd.WithDecoderMaxMemory(maxDecodedSize),
		zstd.WithDecodeAllCapLimit(capLimit),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
	}

	return decoder
}

// ZstdCompressor compresses blocks with Zstandard.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Compress compresses data into a single Zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes a Zstd frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressSize decodes Zstd frames into a buffer of exactly size bytes.
//
// A frame header declaring more content than size is rejected before any
// block is decoded; frames without a declared size stop at the buffer
// capacity.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if out, done, err := checkSizedInput(data, size); done {
		return out, err
	}

	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if header.HasFCS && header.FrameContentSize > uint64(size) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, want %d",
			ErrSizeMismatch, header.FrameContentSize, size)
	}

	decoder, _ := zstdSizedDecoderPool.Get().(*zstd.Decoder)
	defer zstdSizedDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, make([]byte, 0, size))
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
		return nil, fmt.Errorf("%w: zstd payload exceeds %d bytes", ErrSizeMismatch, size)
	}
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) != size {
		return nil, fmt.Errorf("%w: zstd payload decoded to %d bytes, want %d",
			ErrSizeMismatch, len(decompressed), size)
	}

	return decompressed, nil
}
