// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated erased operations and frames to eliminate heap escapes
// when boxing empty structs into any/kont.Frame during Expr-world execution.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprFlush       kont.Erased = Flush{}
)

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// exprThen suspends on op and then continues with next.
func exprThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprAdoptThen binds out to atom and then continues with next.
// Fuses ExprPerform(Adopt{...}) + ExprThen.
func ExprAdoptThen[B any](atom Atom, out *AtomSlot, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(Adopt{Atom: atom, Out: out}, next)
}

// ExprLookupNameThen binds out to the escaped name of atom and then
// continues with next. Fuses ExprPerform(LookupName{...}) + ExprThen.
func ExprLookupNameThen[B any](atom Atom, out *NameSlot, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(LookupName{Atom: atom, Out: out}, next)
}

// ExprFlushDone round-trips and returns a.
// Fuses ExprPerform(Flush{}) + ExprThen + ExprReturn.
func ExprFlushDone[A any](a A) kont.Expr[A] {
	return exprThen(exprFlush, kont.ExprReturn(a))
}

func internBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(ID) kont.Expr[B])
	result := f(current.(ID))
	return kont.Erased(result.Value), result.Frame
}

// ExprInternBind resolves atom immediately and passes the ID to f.
// Fuses ExprPerform(Intern{...}) + ExprBind.
func ExprInternBind[B any](atom Atom, f func(ID) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = internBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Intern{Atom: atom}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
