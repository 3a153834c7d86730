package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/tagpack/encoding"
	"github.com/arloliu/tagpack/errs"
)

type tokenKind uint8

const (
	tokenBool tokenKind = iota
	tokenAbsentBool
	tokenAbsentInt
	tokenAbsentNeg
	tokenInt
	tokenUint
	tokenNeg
)

// token is one command line value.
//
//	true, false   boolean
//	~bool         absent boolean
//	~int          absent integer
//	~neg          absent negative integer
//	-12, 0x1F     integer; decimal, 0x, 0o and 0b forms, magnitude up to MaxUint64
type token struct {
	kind tokenKind
	b    bool
	i    int64
	u    uint64
}

func parseToken(s string) (token, error) {
	switch s {
	case "true":
		return token{kind: tokenBool, b: true}, nil
	case "false":
		return token{kind: tokenBool, b: false}, nil
	case "~bool":
		return token{kind: tokenAbsentBool}, nil
	case "~int":
		return token{kind: tokenAbsentInt}, nil
	case "~neg":
		return token{kind: tokenAbsentNeg}, nil
	}

	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return token{kind: tokenInt, i: i}, nil
	}
	// Past the int64 range, a leading '-' still leaves a magnitude that
	// fits in uint64.
	if magnitude, negative := strings.CutPrefix(s, "-"); negative {
		if u, err := strconv.ParseUint(magnitude, 0, 64); err == nil && u != 0 {
			return token{kind: tokenNeg, u: u}, nil
		}
	} else if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return token{kind: tokenUint, u: u}, nil
	}

	return token{}, fmt.Errorf("%w: %q", errs.ErrInvalidToken, s)
}

func parseTokens(args []string) ([]token, error) {
	tokens := make([]token, 0, len(args))
	for _, arg := range args {
		tok, err := parseToken(arg)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func (t token) writeTo(w *encoding.Writer) error {
	switch t.kind {
	case tokenBool:
		return w.WriteBool(t.b)
	case tokenAbsentBool:
		return w.WriteBoolOpt(encoding.None[bool]())
	case tokenAbsentInt:
		return w.WriteIntOpt(encoding.None[int64]())
	case tokenAbsentNeg:
		return w.WriteIntNegOpt(encoding.None[uint64]())
	case tokenUint:
		return w.WriteIntPos(t.u)
	case tokenNeg:
		return w.WriteIntNeg(t.u)
	default:
		return w.WriteInt(t.i)
	}
}
