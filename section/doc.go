// Package section defines the binary layout of tagpack block frames.
//
// Encoded records can be written straight to any io.Writer. When a stream is
// stored or shipped in chunks, sink.BlockWriter groups whole records into
// blocks and frames each block as:
//
//	┌──────────────────────────────────────────────────────┐
//	│ BlockHeader (16 bytes, fixed)                        │
//	│  - Options (2 bytes, little-endian): flags + magic   │
//	│  - Compression (1 byte)                              │
//	│  - Reserved (1 byte, zero)                           │
//	│  - RawSize (4 bytes)                                 │
//	│  - PayloadSize (4 bytes)                             │
//	│  - RecordCount (4 bytes)                             │
//	├──────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, possibly compressed)     │
//	├──────────────────────────────────────────────────────┤
//	│ Checksum (8 bytes, xxHash64 of the raw records)      │
//	│  - only when the checksum flag is set                │
//	└──────────────────────────────────────────────────────┘
//
// The size fields use the byte order selected by the endianness flag; the
// Options field itself is always little-endian.
//
// A block never splits a record, so each block's raw bytes are a complete
// record stream on their own.
package section
