package section

import (
	"github.com/arloliu/tagpack/endian"
	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
)

// BlockFlag holds the packed options and the compression type of a block frame.
type BlockFlag struct {
	// Options is a packed field.
	// Bit 0 is the checksum flag, 1 means an xxHash64 trailer follows the payload.
	// Bit 1 is the endianness flag for the size fields, 0 little-endian, 1 big-endian.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 are the magic number, 0x7A10 for block frame v1.
	Options uint16

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewBlockFlag creates a BlockFlag with the checksum enabled, little-endian
// size fields and no compression.
func NewBlockFlag() BlockFlag {
	flag := BlockFlag{
		Options:     MagicBlockV1Opt,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithChecksum()
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the frame carries a checksum trailer.
func (f BlockFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// WithChecksum enables the checksum trailer.
func (f *BlockFlag) WithChecksum() {
	f.Options |= ChecksumMask
}

// WithoutChecksum disables the checksum trailer.
func (f *BlockFlag) WithoutChecksum() {
	f.Options &^= ChecksumMask
}

// IsBigEndian returns whether the size fields are big-endian.
func (f BlockFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian size fields.
func (f *BlockFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian size fields.
func (f *BlockFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// CompressionType returns the payload compression.
func (f BlockFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompressionType sets the payload compression.
func (f *BlockFlag) SetCompressionType(c format.CompressionType) {
	f.Compression = uint8(c)
}

// GetMagicNumber returns the magic number bits of Options.
func (f BlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the engine for the size fields.
func (f BlockFlag) GetEndianEngine() endian.EndianEngine {
	return endian.GetEngine(f.IsBigEndian())
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f BlockFlag) Validate() error {
	if f.GetMagicNumber() != MagicBlockV1Opt {
		return errs.ErrInvalidBlockHeader
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidBlockHeader
	}
	if !f.CompressionType().Valid() {
		return errs.ErrInvalidCompression
	}

	return nil
}
