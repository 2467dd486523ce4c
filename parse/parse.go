// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parse provides string parser combinators following the
// conventional Go combinator shape: a combinator consumes a prefix of
// its input and returns the remaining input, the parsed value, and a
// nil error — or a positional [*Error] on failure.
//
// Combinators here are ordinary reusable functions. The statem root
// package adapts any function of this shape into its single-use
// [code.hybscloud.com/statem.Parser] container via Wrap.
package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Func is the combinator convention consumed by statem.Wrap, specialized
// to string input: input in, (rest, value) out on success, error on
// failure. The rest return value is meaningless when err is non-nil;
// positional information lives in the error itself.
type Func[A any] func(input string) (rest string, value A, err error)

// ErrorKind identifies the combinator that produced an error.
type ErrorKind uint8

// Error kinds, one per combinator.
const (
	KindTag ErrorKind = iota + 1
	KindTakeWhileMN
	KindMapRes
	KindAlt
)

// String returns the combinator name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTag:
		return "Tag"
	case KindTakeWhileMN:
		return "TakeWhileMN"
	case KindMapRes:
		return "MapRes"
	case KindAlt:
		return "Alt"
	default:
		return "Unknown"
	}
}

// Error is the positional failure payload shared by all combinators in
// this package. Input is the unconsumed input at the point of failure.
type Error struct {
	Input string
	Kind  ErrorKind
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "parse: " + e.Kind.String() + " failed at " + strconv.Quote(e.Input)
}

// Tag matches the literal tag at the start of the input and consumes it.
// The parsed value is the matched literal.
func Tag(tag string) Func[string] {
	return func(input string) (string, string, error) {
		if strings.HasPrefix(input, tag) {
			return input[len(tag):], input[:len(tag)], nil
		}
		return "", "", &Error{Input: input, Kind: KindTag}
	}
}

// TakeWhileMN consumes between min and max runes satisfying pred.
// Fewer than min matching runes is a failure; consumption stops after
// max runes even if more would match.
func TakeWhileMN(min, max int, pred func(rune) bool) Func[string] {
	return func(input string) (string, string, error) {
		taken := 0
		count := 0
		for count < max {
			r, size := utf8.DecodeRuneInString(input[taken:])
			if size == 0 || !pred(r) {
				break
			}
			taken += size
			count++
		}
		if count < min {
			return "", "", &Error{Input: input, Kind: KindTakeWhileMN}
		}
		return input[taken:], input[:taken], nil
	}
}

// MapRes applies a fallible conversion to a combinator's parsed value.
// A conversion failure is reported at the input position the inner
// combinator started from.
func MapRes[A, B any](f Func[A], conv func(A) (B, error)) Func[B] {
	return func(input string) (string, B, error) {
		rest, a, err := f(input)
		if err != nil {
			var zero B
			return "", zero, err
		}
		b, err := conv(a)
		if err != nil {
			var zero B
			return "", zero, &Error{Input: input, Kind: KindMapRes}
		}
		return rest, b, nil
	}
}

// Alt tries each alternative on the same input and returns the first
// success. If every alternative fails, the failure is reported at the
// original input.
func Alt[A any](alternatives ...Func[A]) Func[A] {
	return func(input string) (string, A, error) {
		for _, f := range alternatives {
			rest, a, err := f(input)
			if err == nil {
				return rest, a, nil
			}
		}
		var zero A
		return "", zero, &Error{Input: input, Kind: KindAlt}
	}
}
