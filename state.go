// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// State represents a deferred, never-failing state transition.
// State[S, A] wraps a single-use step of shape func(S) (A, S): given a
// state, it produces a result of type A and the state carried forward.
//
// Containers are values, but the deferred step inside is affine: it can
// be applied at most once, by a runner or by a composite built from it.
// Applying it a second time panics.
type State[S, A any] struct {
	step func(S) (A, S)
	once *affine
}

// newState wraps a step function with a fresh consumption guard.
func newState[S, A any](step func(S) (A, S)) State[S, A] {
	return State[S, A]{step: step, once: newAffine()}
}

// call consumes the container and applies its deferred step.
func (m State[S, A]) call(s S) (A, S) {
	m.once.use()
	return m.step(s)
}

// Get produces the computation that reads the current state.
// Run with state s it yields (s, s): the state is duplicated by
// assignment into both the result and the state carried forward.
func Get[S any]() State[S, S] {
	return newState(func(s S) (S, S) {
		return s, s
	})
}

// Put produces the computation that replaces the current state.
// Run with any state it yields (struct{}{}, s). The state type of the
// produced container is fixed by the new state, so a Put may introduce
// a different state type than the chain it concludes.
func Put[S any](s S) State[S, struct{}] {
	return newState(func(_ S) (struct{}, S) {
		return struct{}{}, s
	})
}

// Modify produces the computation that applies f to the current state.
// Run with state s it yields (f(s), f(s)): the new state is returned
// as the result as well.
func Modify[S any](f func(S) S) State[S, S] {
	return newState(func(s S) (S, S) {
		s = f(s)
		return s, s
	})
}

// Return lifts a pure value into the State monad.
// The resulting computation leaves whatever state it receives unchanged.
// The state type S must be named at the call site; A is inferred.
func Return[S, A any](a A) State[S, A] {
	return newState(func(s S) (A, S) {
		return a, s
	})
}

// GetState fuses Get + Bind: reads the state, passes it to f.
func GetState[S, B any](f func(S) State[S, B]) State[S, B] {
	return newState(func(s S) (B, S) {
		return f(s).call(s)
	})
}

// PutState fuses Put + Then: replaces the state, then runs next.
func PutState[S, B any](s S, next State[S, B]) State[S, B] {
	return newState(func(_ S) (B, S) {
		return next.call(s)
	})
}

// ModifyState fuses Modify + Bind: applies f to the state, passes the
// new state to then.
func ModifyState[S, B any](f func(S) S, then func(S) State[S, B]) State[S, B] {
	return newState(func(s S) (B, S) {
		s = f(s)
		return then(s).call(s)
	})
}

// RunState applies a State computation to an initial state and returns
// both the result and the final state. This is the only way to observe
// a container's effect, and it consumes the container.
func RunState[S, A any](initial S, m State[S, A]) (A, S) {
	return m.call(initial)
}

// EvalState runs a State computation and returns only the result.
func EvalState[S, A any](initial S, m State[S, A]) A {
	a, _ := RunState(initial, m)
	return a
}

// ExecState runs a State computation and returns only the final state.
func ExecState[S, A any](initial S, m State[S, A]) S {
	_, s := RunState(initial, m)
	return s
}
