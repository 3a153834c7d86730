// Package endian provides the byte order engines used for block frame fields.
//
// Encoded values always use big-endian payloads; the byte order here only
// applies to the fixed-width fields of a block frame header, which a
// BlockWriter can emit in either order.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the
// same value supports both in-place and append-style serialization:
//
//	engine := endian.GetLittleEndianEngine()
//	engine.PutUint32(hdr[4:8], rawSize)
//	buf = engine.AppendUint64(buf, checksum)
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetEngine returns the big-endian engine when bigEndian is set and the
// little-endian engine otherwise.
func GetEngine(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x01
}
