package section

import (
	"fmt"

	"github.com/arloliu/tagpack/errs"
	"github.com/arloliu/tagpack/format"
)

// BlockHeader is the fixed-size header in front of every block frame.
type BlockHeader struct {
	// Flag holds the options and compression type.
	Flag BlockFlag // byte offset 0-2, byte 3 reserved
	// RawSize is the size of the uncompressed record bytes.
	RawSize uint32 // byte offset 4-7
	// PayloadSize is the size of the payload as stored, after compression.
	PayloadSize uint32 // byte offset 8-11
	// RecordCount is the number of records the block holds.
	RecordCount uint32 // byte offset 12-15
}

// NewBlockHeader creates a header with the given flag and zero sizes.
func NewBlockHeader(flag BlockFlag) *BlockHeader {
	return &BlockHeader{Flag: flag}
}

// FrameSize returns the total size of the frame described by h: header,
// payload and checksum trailer.
func (h *BlockHeader) FrameSize() int {
	size := BlockHeaderSize + int(h.PayloadSize)
	if h.Flag.HasChecksum() {
		size += ChecksumSize
	}

	return size
}

// Bytes serializes the header into a new BlockHeaderSize-byte slice.
func (h *BlockHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, BlockHeaderSize))
}

// AppendTo appends the serialized header to dst.
//
// The Options field is always little-endian so a reader can find the
// endianness bit before decoding anything else.
func (h *BlockHeader) AppendTo(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, 0)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RecordCount)

	return dst
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrInvalidBlockHeader for a bad size, magic or reserved field,
//     ErrInvalidCompression or ErrInvalidBlockSize for out-of-range values
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != BlockHeaderSize {
		return fmt.Errorf("%w: size %d", errs.ErrInvalidBlockHeader, len(data))
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.Compression = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte %#x", errs.ErrInvalidBlockHeader, data[3])
	}

	engine := h.Flag.GetEndianEngine()
	h.RawSize = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.RecordCount = engine.Uint32(data[12:16])

	return h.validateSizes()
}

func (h *BlockHeader) validateSizes() error {
	if h.RawSize > MaxBlockSize || h.PayloadSize > MaxBlockSize {
		return fmt.Errorf("%w: raw %d, payload %d", errs.ErrInvalidBlockSize, h.RawSize, h.PayloadSize)
	}
	if h.Flag.CompressionType() == format.CompressionNone && h.PayloadSize != h.RawSize {
		return fmt.Errorf("%w: uncompressed payload %d != raw %d", errs.ErrInvalidBlockSize, h.PayloadSize, h.RawSize)
	}
	if h.RecordCount > h.RawSize {
		return fmt.Errorf("%w: %d records in %d bytes", errs.ErrInvalidBlockSize, h.RecordCount, h.RawSize)
	}

	return nil
}

// ParseBlockHeader parses a BlockHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least 16 bytes)
//
// Returns:
//   - BlockHeader: Parsed header
//   - error: Header validation error
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < BlockHeaderSize {
		return BlockHeader{}, fmt.Errorf("%w: size %d", errs.ErrInvalidBlockHeader, len(data))
	}

	h := BlockHeader{}
	if err := h.Parse(data[:BlockHeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
