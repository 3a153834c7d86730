// Command tagpack encodes booleans and integers into the tagpack binary format.
//
// Usage:
//
//	tagpack encode -- true 42 -257 ~int
//	tagpack encode --block --compression zstd --out values.tp 1 2 3
//	tagpack transcode --from json values.json
//	tagpack transcode --from cbor < values.cbor
//	tagpack unblock values.tp
package main

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

type cli struct {
	Verbose bool `help:"Log debug details to stderr." short:"v"`

	Encode    encodeCmd    `cmd:"" help:"Encode values given on the command line."`
	Transcode transcodeCmd `cmd:"" help:"Encode the scalars of a JSON or CBOR document."`
	Unblock   unblockCmd   `cmd:"" help:"Strip block framing and print the raw record stream."`
}

// runContext carries the process streams and logger into command Run methods.
type runContext struct {
	log    zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("tagpack"),
		kong.Description("Encode booleans and integers into the compact tagpack binary format."),
		kong.UsageOnError(),
	)

	rc := &runContext{
		log:    newLogger(os.Stderr, args.Verbose),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	if err := ctx.Run(rc); err != nil {
		rc.log.Error().Err(err).Str("command", ctx.Command()).Msg("tagpack failed")
		os.Exit(1)
	}
}
