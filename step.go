// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a resolution protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended interner operation on in and resumes
// the protocol to its next effect or completion.
//
// Unlike Exec, Advance never drains outstanding work on completion; the
// caller decides when to round-trip.
func Advance[R any](in *Interner, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	iop, ok := susp.Op().(internerDispatcher)
	if !ok {
		panic("xatom: unhandled effect in Advance")
	}
	return susp.Resume(iop.DispatchInterner(in))
}
