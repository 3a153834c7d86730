// Package compress provides the codecs applied to block frame payloads.
//
// A sink.BlockWriter collects encoded records into a block and may compress
// the whole block before framing it. Records themselves are already compact,
// but streams of similar records (flags, counters, small ids) repeat header
// bytes heavily and compress well.
//
// Supported algorithms:
//   - None: no compression
//   - Zstd: best ratio, moderate speed (github.com/klauspost/compress/zstd)
//   - S2: balanced speed and ratio (github.com/klauspost/compress/s2)
//   - LZ4: fastest decompression (github.com/pierrec/lz4/v4)
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "block")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(block)
//	...
//	block, err = codec.Decompress(packed)
//
// # Incompressible Input
//
// LZ4 and S2 report input they cannot shrink with ErrIncompressible. Callers that frame blocks should then store the block
// uncompressed; BlockWriter does this automatically, and also falls back when
// any codec output is not smaller than its input.
//
// # Bounded Decompression
//
// DecompressSize decodes a payload whose size is known from a frame header.
// Codecs check the size declared inside the payload (zstd frame content
// size, S2 preamble) before decoding and never write past the expected size,
// so a small payload cannot expand into a large allocation. Decompress is
// capped at 64MiB.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and
// are safe for concurrent use.
package compress
