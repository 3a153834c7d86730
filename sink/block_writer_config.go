package sink

import (
	"fmt"

	"github.com/arloliu/tagpack/compress"
	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
	"github.com/arloliu/tagpack/internal/options"
	"github.com/arloliu/tagpack/section"
)

// DefaultBlockSize is the raw size at which a BlockWriter flushes a block.
const DefaultBlockSize = 64 * 1024

// BlockWriterConfig holds the frame settings of a BlockWriter.
type BlockWriterConfig struct {
	flag      section.BlockFlag
	blockSize int
	codec     compress.Codec
}

// NewBlockWriterConfig returns the default configuration: no compression,
// 64KiB blocks, checksum enabled, little-endian frame fields.
func NewBlockWriterConfig() *BlockWriterConfig {
	return &BlockWriterConfig{
		flag:      section.NewBlockFlag(),
		blockSize: DefaultBlockSize,
	}
}

// BlockSize returns the configured flush threshold.
func (c *BlockWriterConfig) BlockSize() int {
	return c.blockSize
}

// Flag returns the block flag written into every frame header.
func (c *BlockWriterConfig) Flag() section.BlockFlag {
	return c.flag
}

func (c *BlockWriterConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
	}
	c.flag.SetCompressionType(comp)

	return nil
}

func (c *BlockWriterConfig) setBlockSize(size int) error {
	if size < section.MinBlockSize || size > section.MaxBlockSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidBlockSize,
			size, section.MinBlockSize, section.MaxBlockSize)
	}
	c.blockSize = size

	return nil
}

func (c *BlockWriterConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.flag.CompressionType(), "block")
	if err != nil {
		return fmt.Errorf("failed to create block codec: %w", err)
	}
	c.codec = codec

	return nil
}

// BlockOption is a functional option for configuring BlockWriter.
type BlockOption = options.Option[*BlockWriterConfig]

// WithCompression configures the payload compression.
// Available compression types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) BlockOption {
	return func(c *BlockWriterConfig) error {
		return c.setCompression(comp)
	}
}

// WithBlockSize sets the raw size in bytes at which a block is flushed.
// It must lie within [section.MinBlockSize, section.MaxBlockSize].
// Default is 64KiB.
func WithBlockSize(size int) BlockOption {
	return func(c *BlockWriterConfig) error {
		return c.setBlockSize(size)
	}
}

// WithChecksum enables or disables the xxHash64 trailer. Default is enabled.
func WithChecksum(enabled bool) BlockOption {
	return options.NoError(func(c *BlockWriterConfig) {
		if enabled {
			c.flag.WithChecksum()
		} else {
			c.flag.WithoutChecksum()
		}
	})
}

// WithLittleEndian writes the frame size fields little-endian. This is the default.
func WithLittleEndian() BlockOption {
	return options.NoError(func(c *BlockWriterConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian writes the frame size fields big-endian.
func WithBigEndian() BlockOption {
	return options.NoError(func(c *BlockWriterConfig) {
		c.flag.WithBigEndian()
	})
}
