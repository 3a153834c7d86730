package section

const (
	// Bit masks of the Options field
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicBlockV1Opt is the version 1 magic number of a block frame.
	MagicBlockV1Opt = 0x7A10
)

// Frame sizes in bytes.
const (
	BlockHeaderSize = 16 // fixed block header size
	ChecksumSize    = 8  // xxHash64 trailer, present when the checksum bit is set

	// MinBlockSize and MaxBlockSize bound the uncompressed size of a block.
	MinBlockSize = 64
	MaxBlockSize = 64 * 1024 * 1024
)
