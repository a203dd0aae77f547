// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// internerErrorHandler handles both interner and error effects.
// Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type internerErrorHandler[E, A any] struct {
	in     *Interner
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Interner+Error handler.
// Dispatch order: Interner → Error.
func (h internerErrorHandler[E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if iop, ok := op.(internerDispatcher); ok {
		return iop.DispatchInterner(h.in), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("xatom: unhandled effect in internerErrorHandler")
}

// ExecError runs a resolution protocol with error handling on in.
// Returns Either[E, R]: Right on success, Left on Throw.
// Outstanding work is drained in both cases, so no bound slot is left
// unwritten by a protocol that throws.
func ExecError[E, R any](in *Interner, protocol kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := internerErrorHandler[E, R]{in: in, errCtx: &errCtx}
	r := kont.Handle(wrapped, h)
	in.drain()
	return r
}

// ExecErrorExpr runs an Expr resolution protocol with error handling on in.
// Drains outstanding work like ExecError.
func ExecErrorExpr[E, R any](in *Interner, protocol kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := internerErrorHandler[E, R]{in: in, errCtx: &errCtx}
	r := kont.HandleExpr(wrapped, h)
	in.drain()
	return r
}

// CheckedFlush round-trips and throws e if any reply has failed since Init.
// Otherwise it continues with next.
func CheckedFlush[E, B any](e E, next kont.Eff[B]) kont.Eff[B] {
	return FlushBind(func(ok bool) kont.Eff[B] {
		if !ok {
			return kont.ThrowError[E, B](e)
		}
		return next
	})
}
