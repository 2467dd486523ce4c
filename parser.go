// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

import (
	"code.hybscloud.com/statem/parse"
)

// Parser adapts the external parser-combinator convention into the same
// single-use sequencing shape as StateResult.
// Parser[S, A] wraps a step of shape func(S) (rest S, value A, err error):
// the convention Go combinators follow, with the error channel fixed to
// the ecosystem's error type the way each combinator library fixes its
// own. Failure follows the StateResult discard policy: when err is
// non-nil the returned rest is the zero value and must not be consulted;
// positional information lives in the error (see [parse.Error]).
type Parser[S, A any] struct {
	step func(S) (S, A, error)
	once *affine
}

// Wrap lifts an arbitrary combinator of the external convention into the
// Parser container. It is a pure type-level adaptation: running the
// wrapped container on an input produces exactly what f produces.
// Unwrapped combinators cannot participate in a bind chain; this is the
// one adaptation step at every boundary crossing.
func Wrap[S, A any](f func(S) (S, A, error)) Parser[S, A] {
	return Parser[S, A]{step: f, once: newAffine()}
}

// call consumes the container and applies its deferred step.
func (m Parser[S, A]) call(s S) (S, A, error) {
	m.once.use()
	return m.step(s)
}

// Token wraps [parse.Tag]: it matches and consumes the literal token at
// the start of the input.
func Token(token string) Parser[string, string] {
	return Wrap[string, string](parse.Tag(token))
}

// TakeWhile wraps [parse.TakeWhileMN]: it consumes between min and max
// runes satisfying pred.
func TakeWhile(min, max int, pred func(rune) bool) Parser[string, string] {
	return Wrap[string, string](parse.TakeWhileMN(min, max, pred))
}

// ParserGet produces the parser that reads the remaining input without
// consuming it.
func ParserGet[S any]() Parser[S, S] {
	return Wrap(func(s S) (S, S, error) {
		return s, s, nil
	})
}

// ParserPut produces the parser that replaces the remaining input.
func ParserPut[S any](s S) Parser[S, struct{}] {
	return Wrap(func(_ S) (S, struct{}, error) {
		return s, struct{}{}, nil
	})
}

// ParserThrow produces the parser that unconditionally fails with err.
func ParserThrow[S, A any](err error) Parser[S, A] {
	return Wrap(func(_ S) (S, A, error) {
		var zs S
		var za A
		return zs, za, err
	})
}

// ParserReturn lifts a pure value into the Parser monad.
// The resulting parser consumes nothing and always succeeds.
// S must be named at the call site; A is inferred.
func ParserReturn[S, A any](a A) Parser[S, A] {
	return Wrap(func(s S) (S, A, error) {
		return s, a, nil
	})
}

// ParserBind sequences two parsers.
// If m fails, the failure propagates immediately and f is never called.
// If m succeeds, f receives the parsed value and its parser runs on the
// remaining input.
func ParserBind[S, A, B any](m Parser[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return Wrap(func(s S) (S, B, error) {
		s1, a, err := m.call(s)
		if err != nil {
			var zs S
			var zb B
			return zs, zb, err
		}
		return f(a).call(s1)
	})
}

// ParserMap applies a pure function to a parser's value.
func ParserMap[S, A, B any](m Parser[S, A], f func(A) B) Parser[S, B] {
	return Wrap(func(s S) (S, B, error) {
		s1, a, err := m.call(s)
		if err != nil {
			var zs S
			var zb B
			return zs, zb, err
		}
		return s1, f(a), nil
	})
}

// ParserThen sequences two parsers, discarding the first value.
func ParserThen[S, A, B any](m Parser[S, A], n Parser[S, B]) Parser[S, B] {
	return Wrap(func(s S) (S, B, error) {
		s1, _, err := m.call(s)
		if err != nil {
			var zs S
			var zb B
			return zs, zb, err
		}
		return n.call(s1)
	})
}

// ParserAlt tries m first; if it fails, each alternative runs in turn on
// the input m started from. The last failure is returned when every
// alternative fails.
func ParserAlt[S, A any](m Parser[S, A], alternatives ...Parser[S, A]) Parser[S, A] {
	return Wrap(func(s S) (S, A, error) {
		s1, a, err := m.call(s)
		if err == nil {
			return s1, a, nil
		}
		for _, alt := range alternatives {
			s1, a, err = alt.call(s)
			if err == nil {
				return s1, a, nil
			}
		}
		var zs S
		var za A
		return zs, za, err
	})
}

// RunParser applies a parser to an input and returns the remaining
// input, the parsed value, and the error, exactly as the innermost
// combinators produced them. It consumes the container.
func RunParser[S, A any](input S, m Parser[S, A]) (S, A, error) {
	return m.call(input)
}
