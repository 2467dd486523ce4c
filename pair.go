// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

// Pair holds two values.
// The StateResult family uses Pair[S, A] as its success payload: the
// carried-forward state first, the bound value second.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
