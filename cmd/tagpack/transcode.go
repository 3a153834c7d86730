package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/tagpack/encoding"
)

// cborDecMode decodes CBOR integers into int64 or uint64 so they reach
// WriteValue without loss.
var cborDecMode cbor.DecMode

func init() {
	var err error
	cborDecMode, err = cbor.DecOptions{
		IntDec: cbor.IntDecConvertNone,
	}.DecMode()
	if err != nil {
		panic("tagpack: CBOR decoder initialization failed: " + err.Error())
	}
}

// valueDecoder yields successive top-level values and io.EOF at the end.
type valueDecoder interface {
	Decode(v any) error
}

func newValueDecoder(from string, r io.Reader) (valueDecoder, error) {
	switch from {
	case "json":
		dec := json.NewDecoder(r)
		dec.UseNumber()

		return dec, nil
	case "cbor":
		return cborDecMode.NewDecoder(r), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", from)
	}
}

// transcode encodes every top-level scalar of the input stream. Top-level
// arrays are flattened one level, so both a JSON array and a sequence of
// values are accepted.
func transcode(from string, r io.Reader, w *encoding.Writer) (int, error) {
	dec, err := newValueDecoder(from, r)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}

			return count, fmt.Errorf("failed to decode %s input: %w", from, err)
		}

		values, ok := v.([]any)
		if !ok {
			values = []any{v}
		}
		for _, item := range values {
			if err := writeScalar(w, item); err != nil {
				return count, fmt.Errorf("value %d: %w", count, err)
			}
			count++
		}
	}
}

// writeScalar writes one decoded value. JSON numbers and CBOR big integers
// are narrowed to the integer writes when their magnitude fits in uint64.
func writeScalar(w *encoding.Writer, v any) error {
	switch x := v.(type) {
	case json.Number:
		n, ok := new(big.Int).SetString(x.String(), 10)
		if ok {
			return writeBigInt(w, n, v)
		}
	case big.Int:
		return writeBigInt(w, &x, v)
	case *big.Int:
		if x != nil {
			return writeBigInt(w, x, v)
		}
	}

	return w.WriteValue(v)
}

func writeBigInt(w *encoding.Writer, n *big.Int, orig any) error {
	if n.Sign() >= 0 {
		if n.IsUint64() {
			return w.WriteIntPos(n.Uint64())
		}

		return w.WriteValue(orig)
	}

	magnitude := new(big.Int).Neg(n)
	if magnitude.IsUint64() {
		return w.WriteIntNeg(magnitude.Uint64())
	}

	return w.WriteValue(orig)
}
