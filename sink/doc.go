// Package sink provides byte sinks for tagpack record streams.
//
// BlockWriter is an io.Writer that sits between an encoding.Writer and the
// final destination. It buffers whole records, then emits them as framed
// blocks (see package section) with optional compression and an xxHash64
// checksum. BlockReader reverses the framing and returns the raw record
// bytes of each block; it does not decode values.
//
//	bw, err := sink.NewBlockWriter(file, sink.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	enc := encoding.NewWriter(bw)
//	_ = enc.WriteInt(-257)
//	if err := bw.Close(); err != nil {
//		return err
//	}
//
// BlockWriter relies on each Write call carrying one complete record, which
// is how encoding.Writer drives its sink. A record is never split across
// blocks.
//
// Neither type is safe for concurrent use.
package sink
