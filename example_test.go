// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem_test

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/statem"
	"code.hybscloud.com/statem/parse"
)

func ExampleRunState() {
	// st <- get; put(st+1); st <- get; put(st+1); get
	m := statem.GetState(func(st int) statem.State[int, int] {
		return statem.PutState(st+1, statem.GetState(func(st int) statem.State[int, int] {
			return statem.PutState(st+1, statem.Get[int]())
		}))
	})
	result, final := statem.RunState(10, m)
	fmt.Printf("return=%d, state=%d\n", result, final)
	// Output: return=12, state=12
}

func ExampleRunStateEither() {
	// The chain fails after two increments, and the state at the point
	// of failure comes back with the error.
	m := statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
		return statem.EitherThen(statem.EitherPut[int, string](st+1),
			statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
				return statem.EitherThen(statem.EitherPut[int, string](st+1),
					statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
						if st > 11 {
							return statem.EitherThrow[int, int]("Oh no!")
						}
						return statem.EitherGet[int, string]()
					}))
			}))
	})
	final, r := statem.RunStateEither(10, m)
	e, _ := r.GetLeft()
	fmt.Printf("state=%d, error=%q\n", final, e)
	// Output: state=12, error="Oh no!"
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// hexPrimary parses a two-digit hex component.
func hexPrimary() statem.Parser[string, uint8] {
	return statem.Wrap[string, uint8](parse.MapRes(
		parse.TakeWhileMN(2, 2, isHexDigit),
		func(s string) (uint8, error) {
			v, err := strconv.ParseUint(s, 16, 8)
			return uint8(v), err
		},
	))
}

func ExampleWrap() {
	// #RRGGBB — bound values are ordinary closure parameters, so no
	// special destructuring support is needed.
	color := statem.ParserThen(statem.Token("#"),
		statem.ParserBind(hexPrimary(), func(red uint8) statem.Parser[string, [3]uint8] {
			return statem.ParserBind(hexPrimary(), func(green uint8) statem.Parser[string, [3]uint8] {
				return statem.ParserMap(hexPrimary(), func(blue uint8) [3]uint8 {
					return [3]uint8{red, green, blue}
				})
			})
		}))
	rest, rgb, err := statem.RunParser("#2F14DF", color)
	fmt.Printf("rest=%q rgb=%v err=%v\n", rest, rgb, err)
	// Output: rest="" rgb=[47 20 223] err=<nil>
}

func ExampleParserAlt() {
	greeting := statem.ParserAlt(statem.Token("bye"), statem.Token("hi"))
	rest, v, err := statem.RunParser("hithere", greeting)
	fmt.Printf("rest=%q value=%q err=%v\n", rest, v, err)
	// Output: rest="there" value="hi" err=<nil>
}
