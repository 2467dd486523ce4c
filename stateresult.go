// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// StateResult represents a deferred state transition that may fail,
// discarding the state on failure.
// StateResult[S, A, E] wraps a single-use step of shape
// func(S) Either[E, Pair[S, A]]: on success the new state and the result
// come back together; on failure only the error comes back — the state
// at the point of failure is structurally absent from the outcome.
//
// This is the short-circuit policy of typical parser error handling:
// once a step fails, the caller gets the error and nothing else.
type StateResult[S, A, E any] struct {
	step func(S) Either[E, Pair[S, A]]
	once *affine
}

// newStateResult wraps a step function with a fresh consumption guard.
func newStateResult[S, A, E any](step func(S) Either[E, Pair[S, A]]) StateResult[S, A, E] {
	return StateResult[S, A, E]{step: step, once: newAffine()}
}

// call consumes the container and applies its deferred step.
func (m StateResult[S, A, E]) call(s S) Either[E, Pair[S, A]] {
	m.once.use()
	return m.step(s)
}

// ResultGet produces the computation that reads the current state.
// It always succeeds, duplicating the state into the result.
func ResultGet[S, E any]() StateResult[S, S, E] {
	return newStateResult(func(s S) Either[E, Pair[S, S]] {
		return Right[E](Pair[S, S]{Fst: s, Snd: s})
	})
}

// ResultPut produces the computation that replaces the current state.
// It always succeeds.
func ResultPut[S, E any](s S) StateResult[S, struct{}, E] {
	return newStateResult(func(_ S) Either[E, Pair[S, struct{}]] {
		return Right[E](Pair[S, struct{}]{Fst: s})
	})
}

// ResultThrow produces the computation that unconditionally fails with e,
// regardless of the state it receives. The incoming state is discarded.
func ResultThrow[S, A, E any](e E) StateResult[S, A, E] {
	return newStateResult(func(_ S) Either[E, Pair[S, A]] {
		return Left[E, Pair[S, A]](e)
	})
}

// ResultReturn lifts a pure value into the StateResult monad.
// The resulting computation always succeeds and leaves the state unchanged.
// S and E must be named at the call site; A is inferred.
func ResultReturn[S, E, A any](a A) StateResult[S, A, E] {
	return newStateResult(func(s S) Either[E, Pair[S, A]] {
		return Right[E](Pair[S, A]{Fst: s, Snd: a})
	})
}

// ResultBind sequences two StateResult computations.
// If m fails, the failure propagates immediately and f is never called;
// the state present at the point of failure is not passed along. If m
// succeeds, f receives the bound value and its computation runs with the
// state m carried forward.
func ResultBind[S, A, B, E any](m StateResult[S, A, E], f func(A) StateResult[S, B, E]) StateResult[S, B, E] {
	return newStateResult(func(s S) Either[E, Pair[S, B]] {
		r := m.call(s)
		ok, isRight := r.GetRight()
		if !isRight {
			e, _ := r.GetLeft()
			return Left[E, Pair[S, B]](e)
		}
		return f(ok.Snd).call(ok.Fst)
	})
}

// ResultMap applies a pure function to the result of a StateResult
// computation. Failure propagates unchanged.
func ResultMap[S, A, B, E any](m StateResult[S, A, E], f func(A) B) StateResult[S, B, E] {
	return newStateResult(func(s S) Either[E, Pair[S, B]] {
		r := m.call(s)
		ok, isRight := r.GetRight()
		if !isRight {
			e, _ := r.GetLeft()
			return Left[E, Pair[S, B]](e)
		}
		return Right[E](Pair[S, B]{Fst: ok.Fst, Snd: f(ok.Snd)})
	})
}

// ResultThen sequences two StateResult computations, discarding the
// first result. Failure of m propagates without running n.
func ResultThen[S, A, B, E any](m StateResult[S, A, E], n StateResult[S, B, E]) StateResult[S, B, E] {
	return newStateResult(func(s S) Either[E, Pair[S, B]] {
		r := m.call(s)
		ok, isRight := r.GetRight()
		if !isRight {
			e, _ := r.GetLeft()
			return Left[E, Pair[S, B]](e)
		}
		return n.call(ok.Fst)
	})
}

// ResultCatch wraps a computation with an error handler.
// If body fails, handler receives the error and its computation runs
// with the state body started from — the failing state is gone, so the
// handler backtracks to the entry state.
func ResultCatch[S, A, E any](body StateResult[S, A, E], handler func(E) StateResult[S, A, E]) StateResult[S, A, E] {
	return newStateResult(func(s S) Either[E, Pair[S, A]] {
		r := body.call(s)
		if e, isLeft := r.GetLeft(); isLeft {
			return handler(e).call(s)
		}
		return r
	})
}

// ResultSequence runs computations left to right, threading the state
// through each one and collecting results, stopping at the first failure.
func ResultSequence[S, A, E any](ms []StateResult[S, A, E]) StateResult[S, []A, E] {
	return newStateResult(func(s S) Either[E, Pair[S, []A]] {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			r := m.call(s)
			ok, isRight := r.GetRight()
			if !isRight {
				e, _ := r.GetLeft()
				return Left[E, Pair[S, []A]](e)
			}
			s = ok.Fst
			out = append(out, ok.Snd)
		}
		return Right[E](Pair[S, []A]{Fst: s, Snd: out})
	})
}

// RunStateResult applies a StateResult computation to an initial state.
// It returns Right(Pair{finalState, result}) on success, or Left(error)
// on failure — the failing state is unrecoverable by design.
func RunStateResult[S, A, E any](initial S, m StateResult[S, A, E]) Either[E, Pair[S, A]] {
	return m.call(initial)
}
