// Package errs defines the sentinel errors shared by tagpack packages.
//
// Recoverable failures are returned as errors wrapping one of these values, so
// callers can match them with errors.Is. Contract violations (a tag or nibble
// that does not fit in four bits, a zero negative magnitude) are programming
// errors; the encoder panics with an error wrapping the matching sentinel.
package errs

import "errors"

// Encoder errors.
var (
	// ErrSinkWrite wraps any failure reported by the underlying byte sink.
	ErrSinkWrite = errors.New("tagpack: sink write failed")
	// ErrUnsupportedValue is returned by WriteValue for types with no encoding.
	ErrUnsupportedValue = errors.New("tagpack: unsupported value type")
)

// Contract violations, carried as panic values.
var (
	ErrTagOverflow    = errors.New("tagpack: tag exceeds 4 bits")
	ErrNibbleOverflow = errors.New("tagpack: nibble value exceeds 4 bits")
	ErrPayloadTooLong = errors.New("tagpack: payload longer than 15 bytes")
	ErrNegativeZero   = errors.New("tagpack: negative integer magnitude must not be zero")
)

// Block frame errors.
var (
	ErrInvalidBlockHeader = errors.New("tagpack: invalid block header")
	ErrInvalidBlockSize   = errors.New("tagpack: invalid block size")
	ErrInvalidCompression = errors.New("tagpack: invalid compression type")
	ErrChecksumMismatch   = errors.New("tagpack: block checksum mismatch")
	ErrTruncatedBlock     = errors.New("tagpack: truncated block")
	ErrWriterClosed       = errors.New("tagpack: block writer is closed")
)

// CLI input errors.
var (
	ErrInvalidToken = errors.New("tagpack: invalid value token")
)
