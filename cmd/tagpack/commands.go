package main

import (
	"fmt"

	"github.com/arloliu/tagpack/encoding"
	"github.com/arloliu/tagpack/sink"
)

type encodeCmd struct {
	outputFlags `embed:""`

	Tokens []string `arg:"" name:"value" help:"Values: true, false, ~bool, ~int, ~neg or an integer."`
}

func (c *encodeCmd) Run(rc *runContext) error {
	tokens, err := parseTokens(c.Tokens)
	if err != nil {
		return err
	}

	return c.encode(rc, func(w *encoding.Writer) (int, error) {
		for i, tok := range tokens {
			if err := tok.writeTo(w); err != nil {
				return i, err
			}
		}

		return len(tokens), nil
	})
}

type transcodeCmd struct {
	outputFlags `embed:""`

	From string `help:"Input format." enum:"json,cbor" required:""`
	File string `arg:"" optional:"" help:"Input file, stdin when omitted or '-'." default:"-"`
}

func (c *transcodeCmd) Run(rc *runContext) error {
	in, err := openInput(rc, c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	return c.encode(rc, func(w *encoding.Writer) (int, error) {
		return transcode(c.From, in, w)
	})
}

type unblockCmd struct {
	Out  string `help:"Write raw record bytes to this file instead of printing hex." short:"o" type:"path"`
	File string `arg:"" optional:"" help:"Block stream file, stdin when omitted or '-'." default:"-"`
}

func (c *unblockCmd) Run(rc *runContext) error {
	in, err := openInput(rc, c.File)
	if err != nil {
		return err
	}
	defer in.Close()

	var records []byte
	var blocks int
	for block, err := range sink.NewBlockReader(in).All() {
		if err != nil {
			return fmt.Errorf("block %d: %w", blocks, err)
		}
		rc.log.Debug().
			Int("block", blocks).
			Uint32("records", block.Header.RecordCount).
			Uint32("raw_size", block.Header.RawSize).
			Uint32("payload_size", block.Header.PayloadSize).
			Stringer("compression", block.Header.Flag.CompressionType()).
			Msg("block read")
		records = append(records, block.Records...)
		blocks++
	}

	out := outputFlags{Out: c.Out}

	return out.deliver(rc, records)
}
