package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/tagpack/encoding"
	"github.com/arloliu/tagpack/format"
	"github.com/arloliu/tagpack/sink"
)

// outputFlags are shared by the commands that produce encoded records.
type outputFlags struct {
	Out         string `help:"Write raw bytes to this file instead of printing hex." short:"o" type:"path"`
	Block       bool   `help:"Wrap the records in block frames."`
	Compression string `help:"Block payload compression." enum:"none,zstd,s2,lz4" default:"none"`
	BlockSize   int    `help:"Raw block size in bytes." default:"65536"`
	NoChecksum  bool   `help:"Omit the block checksum."`
}

func (o *outputFlags) blockOptions() ([]sink.BlockOption, error) {
	comp, ok := format.ParseCompressionType(o.Compression)
	if !ok {
		return nil, fmt.Errorf("unknown compression %q", o.Compression)
	}

	return []sink.BlockOption{
		sink.WithCompression(comp),
		sink.WithBlockSize(o.BlockSize),
		sink.WithChecksum(!o.NoChecksum),
	}, nil
}

// encode runs fn against a Writer and delivers the result as hex on stdout
// or as raw bytes in the output file. fn returns the number of records written.
func (o *outputFlags) encode(rc *runContext, fn func(w *encoding.Writer) (int, error)) error {
	var buf bytes.Buffer
	var dst io.Writer = &buf

	var bw *sink.BlockWriter
	if o.Block {
		opts, err := o.blockOptions()
		if err != nil {
			return err
		}
		bw, err = sink.NewBlockWriter(&buf, opts...)
		if err != nil {
			return err
		}
		dst = bw
	}

	count, err := fn(encoding.NewWriter(dst))
	if err != nil {
		return err
	}

	if bw != nil {
		if err := bw.Close(); err != nil {
			return err
		}
		stats := bw.Stats()
		rc.log.Debug().
			Stringer("compression", stats.Algorithm).
			Int64("blocks", stats.Blocks).
			Int64("stored_blocks", stats.StoredBlocks).
			Float64("ratio", stats.CompressionRatio()).
			Msg("blocks written")
	}

	rc.log.Debug().Int("records", count).Int("bytes", buf.Len()).Msg("encoded")

	return o.deliver(rc, buf.Bytes())
}

func (o *outputFlags) deliver(rc *runContext, data []byte) error {
	if o.Out != "" {
		if err := os.WriteFile(o.Out, data, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("failed to write output: %w", err)
		}
		rc.log.Info().Str("path", o.Out).Int("bytes", len(data)).Msg("output written")

		return nil
	}

	_, err := fmt.Fprintf(rc.stdout, "% x\n", data)

	return err
}

// openInput returns stdin for "" and "-", the named file otherwise.
func openInput(rc *runContext, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(rc.stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, nil
}
