// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem

import (
	"sync/atomic"
)

// affine is the one-shot consumption guard carried by every container.
// A container's deferred step may be applied at most once; the guard is
// shared by all copies of a container value, so running any copy
// consumes them all.
//
// Affine usage models move semantics for the deferred computation:
// composition transfers ownership of the constituents into the composite,
// and running the composite consumes each constituent exactly once.
type affine struct {
	used atomic.Uintptr
}

func newAffine() *affine {
	return &affine{}
}

// use marks the guard consumed.
// Panics if the computation has already been consumed.
func (a *affine) use() {
	if a.used.Add(1) != 1 {
		panic("statem: computation consumed twice")
	}
}
