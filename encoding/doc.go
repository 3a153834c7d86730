// Package encoding implements the tagpack value encoder.
//
// Every value is written as a record made of a header byte and an optional
// payload. The upper nibble of the header is a format.Tag, the lower nibble is
// either an inline value or the payload length:
//
//	┌────────────┬───────────────┬──────────────────────────┐
//	│ tag (4bit) │ nibble (4bit) │ payload (0-8 bytes, BE)  │
//	└────────────┴───────────────┴──────────────────────────┘
//
// # Booleans
//
// Booleans have no payload. The nibble holds a raw code:
//
//	absent → 0x10
//	true   → 0x11
//	false  → 0x12
//
// # Integers
//
// Integers are compacted to the fewest big-endian bytes that hold the value,
// with a minimum of one byte, and the nibble holds that byte count:
//
//	0          → 0x21 0x00
//	0x1234     → 0x22 0x12 0x34
//	MaxUint64  → 0x28 0xFF 0xFF 0xFF 0xFF 0xFF 0xFF 0xFF 0xFF
//
// Negative integers use their own tag and store magnitude-1, which removes
// negative zero and lets -1 use the one-byte zero payload:
//
//	-1   → 0x31 0x00
//	-257 → 0x32 0x01 0x00
//
// An absent integer is a header with a zero-length payload. Absent signed
// integers always use the positive tag (0x20), so a reader can recognize "no
// value" without knowing the sign.
//
// # Usage
//
//	var buf bytes.Buffer
//	w := encoding.NewWriter(&buf)
//	_ = w.WriteBool(true)
//	_ = w.WriteInt(-257)
//	_ = w.WriteIntOpt(encoding.None[int64]())
//	// buf: 11 32 01 00 20
//
// The Append functions produce the same bytes without a sink:
//
//	dst = encoding.AppendIntPos(dst, 0x1234)
//
// # Contract Violations
//
// Some inputs cannot be encoded:
//   - a tag or nibble wider than four bits (errs.ErrTagOverflow, errs.ErrNibbleOverflow)
//   - a payload longer than 15 bytes (errs.ErrPayloadTooLong)
//   - a zero magnitude passed to WriteIntNeg (errs.ErrNegativeZero)
//
// These are programming errors. The encoder panics with an error wrapping the
// matching sentinel before any byte reaches the sink. WriteInt never triggers
// the negative-zero check.
//
// # Thread Safety
//
// Writer is not thread-safe. Use one Writer per goroutine and do not share a
// sink between Writers. The Append functions are safe for concurrent use on
// distinct destination slices.
package encoding
