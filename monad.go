// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Monad operations for the State family.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept to avoid the intermediate
// Return closure where the continuation is pure or constant.

// Bind sequences two State computations (monadic bind).
// The composite, when run, applies m to the incoming state, passes the
// result to f, and applies the computation f produces to the state m
// carried forward. Bind itself never applies anything: it only builds a
// larger deferred step that consumes its constituents when finally run.
func Bind[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return newState(func(s S) (B, S) {
		a, s1 := m.call(s)
		return f(a).call(s1)
	})
}

// Map applies a pure function to the result of a State computation.
// Equivalent to Bind(m, func(a) Return[S](f(a))) without the
// intermediate Return container.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return newState(func(s S) (B, S) {
		a, s1 := m.call(s)
		return f(a), s1
	})
}

// Then sequences two State computations, discarding the first result.
func Then[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return newState(func(s S) (B, S) {
		_, s1 := m.call(s)
		return n.call(s1)
	})
}

// Sequence runs computations left to right, threading the state through
// each one, and collects their results in order.
func Sequence[S, A any](ms []State[S, A]) State[S, []A] {
	return newState(func(s S) ([]A, S) {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			var a A
			a, s = m.call(s)
			out = append(out, a)
		}
		return out, s
	})
}
