// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package statem provides single-use state-threading monads in Go:
// a pure [State] monad, two failing hybrids ([StateResult] and
// [StateEither]) that differ only in what happens to the state when a
// step fails, and a [Parser] container that adapts the conventional Go
// parser-combinator calling shape into the same sequencing protocol.
//
// Each container wraps exactly one deferred computation. Composition
// never runs anything; it builds a larger deferred computation that,
// when finally run, invokes its constituents left to right. Running is
// the only way to observe a container's effect, and it consumes the
// container: the deferred step is affine and a second invocation panics.
//
// # Design Philosophy
//
// statem trades run-time efficiency for compositional clarity. Every
// combinator allocates one deferred step, and a chain of n binds nests n
// call frames when finally run. This is a corner of the design space
// explored for expressiveness, not a parsing engine: state is a value
// passed by move from one step's output to the next step's input, never
// aliased, with no concurrency, cancellation, or resumption anywhere.
//
// # Sequencing Protocol
//
// Every family provides a bind and a lift satisfying the monad laws:
//
//   - left identity:  Bind(Return(a), f) ≡ f(a)
//   - right identity: Bind(m, Return) ≡ m
//   - associativity:  Bind(Bind(m, f), g) ≡ Bind(m, func(a) Bind(f(a), g))
//
// Do-notation in this package is ordinary code: nested bind closures, or
// the fused constructors ([GetState], [PutState], [ModifyState]) that
// keep chains linear. Bound results are ordinary closure parameters, so
// destructuring needs no special support.
//
// # State
//
// [State][S, A] wraps func(S) (A, S) — a pending, never-failing state
// transition. No error channel exists in this family.
//
//   - [Get], [Put], [Modify]: State accessors and mutators
//   - [Return]: Lift a pure value, state untouched
//   - [Bind], [Map], [Then], [Sequence]: Composition
//   - [GetState], [PutState], [ModifyState]: Fused constructors
//   - [RunState], [EvalState], [ExecState]: Runners
//
// # StateResult
//
// [StateResult][S, A, E] wraps func(S) Either[E, Pair[S, A]]. The first
// failure aborts the chain and discards the state at the point of
// failure — structurally: the failure case carries no state at all.
//
//   - [ResultGet], [ResultPut], [ResultThrow]
//   - [ResultReturn], [ResultBind], [ResultMap], [ResultThen]
//   - [ResultCatch]: Handle a failure, backtracking to the entry state
//   - [ResultSequence]
//   - [RunStateResult]: Returns Either[E, Pair[S, A]]
//
// # StateEither
//
// [StateEither][S, A, E] wraps func(S) (S, Either[E, A]). The first
// failure aborts the chain but the state as of the failing step is
// always returned, enabling position-aware diagnostics.
//
//   - [EitherGet], [EitherPut], [EitherThrow]
//   - [EitherReturn], [EitherBind], [EitherMap], [EitherThen]
//   - [EitherCatch]: Handle a failure at the state it happened in
//   - [EitherSequence]
//   - [RunStateEither]: Returns (S, Either[E, A])
//
// # Parser
//
// [Parser][S, A] wraps func(S) (rest S, value A, err error) — the
// conventional Go combinator shape — with the StateResult failure
// policy. Any function of that shape participates after one [Wrap];
// the [code.hybscloud.com/statem/parse] subpackage provides conforming
// combinators ([parse.Tag], [parse.TakeWhileMN], [parse.MapRes],
// [parse.Alt]) with positional [parse.Error] failures.
//
//   - [Wrap]: Adapt an external combinator (pure type-level adaptation)
//   - [Token], [TakeWhile]: Pre-wrapped conveniences
//   - [ParserGet], [ParserPut], [ParserThrow]
//   - [ParserReturn], [ParserBind], [ParserMap], [ParserThen], [ParserAlt]
//   - [RunParser]: Returns (rest, value, err) exactly as produced
//
// # Either and Pair
//
// [Either] represents success (Right) or failure (Left); the failing
// families thread a caller-defined Left payload without ever inspecting
// it. [Pair] is the success tuple of the StateResult family.
//
//   - [Left], [Right], [Either.IsLeft], [Either.IsRight]
//   - [Either.GetLeft], [Either.GetRight], [MatchEither]
//   - [MapEither], [FlatMapEither], [MapLeftEither]
//
// # Single-Use Enforcement
//
// Containers own their deferred computation exclusively. Binding a
// container into a chain transfers that ownership; running the chain
// consumes every constituent. Consuming any container twice — running
// it twice, or running two chains built from the same container — panics
// with "statem: computation consumed twice" rather than silently
// recomputing.
//
// # Example
//
//	m := statem.GetState(func(st int) statem.State[int, int] {
//		return statem.PutState(st+1, statem.GetState(func(st int) statem.State[int, int] {
//			return statem.PutState(st+1, statem.Get[int]())
//		}))
//	})
//	result, final := statem.RunState(10, m)
//	// result == 12, final == 12
package statem
