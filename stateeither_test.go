// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem_test

import (
	"testing"

	"code.hybscloud.com/statem"
)

// eitherHelper mirrors resultHelper for the state-preserving family.
func eitherHelper(limit int) statem.StateEither[int, int, string] {
	return statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
		return statem.EitherThen(statem.EitherPut[int, string](st+1),
			statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
				return statem.EitherThen(statem.EitherPut[int, string](st+1),
					statem.EitherBind(statem.EitherGet[int, string](), func(st int) statem.StateEither[int, int, string] {
						check := statem.EitherReturn[int, string](struct{}{})
						if st > limit {
							check = statem.EitherThrow[int, struct{}]("Oh no!")
						}
						return statem.EitherThen(check, statem.EitherGet[int, string]())
					}))
			}))
	})
}

func TestStateEitherFailurePreservesState(t *testing.T) {
	final, r := statem.RunStateEither(10, eitherHelper(11))
	if final != 12 {
		t.Fatalf("got state %d, want 12", final)
	}
	e, isLeft := r.GetLeft()
	if !isLeft {
		t.Fatal("expected failure")
	}
	if e != "Oh no!" {
		t.Fatalf("got error %q, want %q", e, "Oh no!")
	}
}

func TestStateEitherSuccess(t *testing.T) {
	final, r := statem.RunStateEither(10, eitherHelper(12))
	a, isRight := r.GetRight()
	if !isRight {
		e, _ := r.GetLeft()
		t.Fatalf("expected success, got error %q", e)
	}
	if final != 12 || a != 12 {
		t.Fatalf("got (%d, %d), want (12, 12)", final, a)
	}
}

func TestStateEitherThrowReportsIncomingState(t *testing.T) {
	final, r := statem.RunStateEither(33, statem.EitherThrow[int, int]("boom"))
	if final != 33 {
		t.Fatalf("got state %d, want 33", final)
	}
	if r.IsRight() {
		t.Fatal("expected failure")
	}
}

func TestStateEitherBindSkipsContinuation(t *testing.T) {
	called := false
	comp := statem.EitherBind(statem.EitherThrow[int, int]("boom"), func(int) statem.StateEither[int, int, string] {
		called = true
		return statem.EitherGet[int, string]()
	})
	final, r := statem.RunStateEither(10, comp)
	if r.IsRight() {
		t.Fatal("expected failure")
	}
	if final != 10 {
		t.Fatalf("got state %d, want 10", final)
	}
	if called {
		t.Fatal("continuation must not run after a failure")
	}
}

func TestStateEitherReturnLeavesStateUntouched(t *testing.T) {
	final, r := statem.RunStateEither(100, statem.EitherReturn[int, string](42))
	a, isRight := r.GetRight()
	if !isRight {
		t.Fatal("expected success")
	}
	if final != 100 || a != 42 {
		t.Fatalf("got (%d, %d), want (100, 42)", final, a)
	}
}

func TestStateEitherMapPreservesFailureState(t *testing.T) {
	body := statem.EitherThen(statem.EitherPut[int, string](11),
		statem.EitherThrow[int, int]("boom"))
	final, r := statem.RunStateEither(10, statem.EitherMap(body, func(a int) int { return a * 2 }))
	if final != 11 {
		t.Fatalf("got state %d, want 11", final)
	}
	if r.IsRight() {
		t.Fatal("expected failure")
	}
}

func TestStateEitherCatchRunsAtFailingState(t *testing.T) {
	// The body advances the state to 11 before failing; the handler
	// runs at 11, not at the entry state.
	body := statem.EitherThen(statem.EitherPut[int, string](11),
		statem.EitherThrow[int, int]("boom"))
	comp := statem.EitherCatch(body, func(e string) statem.StateEither[int, int, string] {
		return statem.EitherGet[int, string]()
	})
	final, r := statem.RunStateEither(10, comp)
	a, isRight := r.GetRight()
	if !isRight {
		t.Fatal("expected handler to recover")
	}
	if final != 11 || a != 11 {
		t.Fatalf("got (%d, %d), want (11, 11)", final, a)
	}
}

func TestStateEitherSequenceReportsFailureState(t *testing.T) {
	steps := []statem.StateEither[int, int, string]{
		statem.EitherThen(statem.EitherPut[int, string](5), statem.EitherGet[int, string]()),
		statem.EitherThrow[int, int]("boom"),
		statem.EitherGet[int, string](),
	}
	final, r := statem.RunStateEither(1, statem.EitherSequence(steps))
	if final != 5 {
		t.Fatalf("got state %d, want 5", final)
	}
	if r.IsRight() {
		t.Fatal("expected failure")
	}
}

// Identical chains through both failing families: StateResult yields
// only the error, StateEither yields the error with the state at the
// failing step.
func TestDiscardVersusPreserve(t *testing.T) {
	r := statem.RunStateResult(10, resultHelper(11))
	if r.IsRight() {
		t.Fatal("StateResult: expected failure")
	}
	e, _ := r.GetLeft()

	final, r2 := statem.RunStateEither(10, eitherHelper(11))
	e2, isLeft := r2.GetLeft()
	if !isLeft {
		t.Fatal("StateEither: expected failure")
	}
	if e != e2 {
		t.Fatalf("families disagree on the error: %q vs %q", e, e2)
	}
	if final != 12 {
		t.Fatalf("StateEither: got state %d, want 12", final)
	}
}
