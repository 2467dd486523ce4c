// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// StateEither represents a deferred state transition that may fail but
// always reports the latest state.
// StateEither[S, A, E] wraps a single-use step of shape
// func(S) (S, Either[E, A]): success or failure, the state as of that
// step comes back alongside the outcome.
//
// Compared to StateResult, this trades carrying the state through every
// step for position-aware diagnostics: a caller always learns where the
// computation stood when it failed.
type StateEither[S, A, E any] struct {
	step func(S) (S, Either[E, A])
	once *affine
}

// newStateEither wraps a step function with a fresh consumption guard.
func newStateEither[S, A, E any](step func(S) (S, Either[E, A])) StateEither[S, A, E] {
	return StateEither[S, A, E]{step: step, once: newAffine()}
}

// call consumes the container and applies its deferred step.
func (m StateEither[S, A, E]) call(s S) (S, Either[E, A]) {
	m.once.use()
	return m.step(s)
}

// EitherGet produces the computation that reads the current state.
// It always succeeds, duplicating the state into the result.
func EitherGet[S, E any]() StateEither[S, S, E] {
	return newStateEither(func(s S) (S, Either[E, S]) {
		return s, Right[E](s)
	})
}

// EitherPut produces the computation that replaces the current state.
// It always succeeds.
func EitherPut[S, E any](s S) StateEither[S, struct{}, E] {
	return newStateEither(func(_ S) (S, Either[E, struct{}]) {
		return s, Right[E](struct{}{})
	})
}

// EitherThrow produces the computation that unconditionally fails with e.
// The incoming state is passed through and reported with the failure.
func EitherThrow[S, A, E any](e E) StateEither[S, A, E] {
	return newStateEither(func(s S) (S, Either[E, A]) {
		return s, Left[E, A](e)
	})
}

// EitherReturn lifts a pure value into the StateEither monad.
// The resulting computation always succeeds and leaves the state unchanged.
// S and E must be named at the call site; A is inferred.
func EitherReturn[S, E, A any](a A) StateEither[S, A, E] {
	return newStateEither(func(s S) (S, Either[E, A]) {
		return s, Right[E](a)
	})
}

// EitherBind sequences two StateEither computations.
// If m fails, the failure propagates immediately and f is never called —
// but the state m reported at the point of failure is still returned.
// If m succeeds, f receives the bound value and its computation runs
// with the state m carried forward.
func EitherBind[S, A, B, E any](m StateEither[S, A, E], f func(A) StateEither[S, B, E]) StateEither[S, B, E] {
	return newStateEither(func(s S) (S, Either[E, B]) {
		s1, r := m.call(s)
		a, isRight := r.GetRight()
		if !isRight {
			e, _ := r.GetLeft()
			return s1, Left[E, B](e)
		}
		return f(a).call(s1)
	})
}

// EitherMap applies a pure function to the result of a StateEither
// computation. Failure propagates with its state unchanged.
func EitherMap[S, A, B, E any](m StateEither[S, A, E], f func(A) B) StateEither[S, B, E] {
	return newStateEither(func(s S) (S, Either[E, B]) {
		s1, r := m.call(s)
		a, isRight := r.GetRight()
		if !isRight {
			e, _ := r.GetLeft()
			return s1, Left[E, B](e)
		}
		return s1, Right[E](f(a))
	})
}

// EitherThen sequences two StateEither computations, discarding the
// first result. Failure of m propagates, with its state, without
// running n.
func EitherThen[S, A, B, E any](m StateEither[S, A, E], n StateEither[S, B, E]) StateEither[S, B, E] {
	return newStateEither(func(s S) (S, Either[E, B]) {
		s1, r := m.call(s)
		if e, isLeft := r.GetLeft(); isLeft {
			return s1, Left[E, B](e)
		}
		return n.call(s1)
	})
}

// EitherCatch wraps a computation with an error handler.
// If body fails, handler receives the error and its computation runs
// with the state body reported at the point of failure — no backtracking.
func EitherCatch[S, A, E any](body StateEither[S, A, E], handler func(E) StateEither[S, A, E]) StateEither[S, A, E] {
	return newStateEither(func(s S) (S, Either[E, A]) {
		s1, r := body.call(s)
		if e, isLeft := r.GetLeft(); isLeft {
			return handler(e).call(s1)
		}
		return s1, r
	})
}

// EitherSequence runs computations left to right, threading the state
// through each one and collecting results. The first failure stops the
// sequence; its state is reported with the error.
func EitherSequence[S, A, E any](ms []StateEither[S, A, E]) StateEither[S, []A, E] {
	return newStateEither(func(s S) (S, Either[E, []A]) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			s1, r := m.call(s)
			a, isRight := r.GetRight()
			if !isRight {
				e, _ := r.GetLeft()
				return s1, Left[E, []A](e)
			}
			s = s1
			out = append(out, a)
		}
		return s, Right[E](out)
	})
}

// RunStateEither applies a StateEither computation to an initial state.
// It returns the state as of the final (or failing) step together with
// Right(result) or Left(error).
func RunStateEither[S, A, E any](initial S, m StateEither[S, A, E]) (S, Either[E, A]) {
	return m.call(initial)
}
