// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// internerHandler implements kont.Handler for interner effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type internerHandler[R any] struct {
	in *Interner
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h internerHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	iop, ok := op.(internerDispatcher)
	if !ok {
		panic("xatom: unhandled effect in internerHandler")
	}
	return iop.DispatchInterner(h.in), true
}

// Exec runs a Cont-world resolution protocol on in.
// A final round trip drains whatever the protocol left outstanding, so
// every slot bound during the protocol is done when Exec returns.
func Exec[R any](in *Interner, protocol kont.Eff[R]) R {
	h := internerHandler[R]{in: in}
	r := kont.Handle(protocol, h)
	in.drain()
	return r
}

// ExecExpr runs an Expr-world resolution protocol on in.
// Drains outstanding work like Exec.
func ExecExpr[R any](in *Interner, protocol kont.Expr[R]) R {
	h := internerHandler[R]{in: in}
	r := kont.HandleExpr(protocol, h)
	in.drain()
	return r
}

// drain round-trips only if something is outstanding.
func (in *Interner) drain() {
	if len(in.pending) > 0 || len(in.copies) > 0 || len(in.escaped) > 0 {
		in.RoundTrip()
	}
}
