// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/xatom"
)

func TestExecAdoptAll(t *testing.T) {
	f := newFixture()
	atoms := []xatom.Atom{5, 7, 5, 0, 7}
	slots := make([]xatom.AtomSlot, len(atoms))

	n := xatom.Exec(f.in, xatom.AdoptAll(atoms, slots, kont.Pure(len(atoms))))
	if n != len(atoms) {
		t.Fatalf("result got %d, want %d", n, len(atoms))
	}
	// Exec drains outstanding work before returning.
	wantOutstanding(t, f.in, 0, 0, 0)
	for i, a := range atoms {
		if !slots[i].Done() {
			t.Fatalf("slot %d not written", i)
		}
		if a != xatom.None {
			f.wantName(t, slots[i].ID(), a)
		}
	}
	if r := f.conn.Requests(); r != 2 {
		t.Fatalf("requests got %d, want 2", r)
	}
}

func TestExecInternBind(t *testing.T) {
	f := newFixture()
	protocol := xatom.InternBind(xatom.Atom(39), func(id xatom.ID) kont.Eff[string] {
		name, _ := f.ctx.Table().Text(id)
		return kont.Pure(name)
	})
	if got := xatom.Exec(f.in, protocol); got != "WM_NAME" {
		t.Fatalf("got %q, want %q", got, "WM_NAME")
	}
}

func TestExecFlushBind(t *testing.T) {
	f := newFixture()
	var id xatom.AtomSlot
	var name xatom.NameSlot
	protocol := xatom.AdoptThen(xatom.Atom(67), &id,
		xatom.LookupNameThen(xatom.Atom(67), &name,
			xatom.FlushBind(func(ok bool) kont.Eff[bool] {
				return kont.Pure(ok && id.Done() && name.Done())
			}),
		),
	)
	if !xatom.Exec(f.in, protocol) {
		t.Fatal("slots not written by Flush")
	}
	f.wantName(t, id.ID(), 67)
	if got, _ := name.Name(); got != "WM_CLASS" {
		t.Fatalf("escaped got %q, want %q", got, "WM_CLASS")
	}
}

func TestExecErrorCheckedFlush(t *testing.T) {
	f := newFixture()
	f.srv.Fail(xatom.Atom(5), errInjected)

	var a, b xatom.AtomSlot
	protocol := xatom.AdoptThen(xatom.Atom(5), &a,
		xatom.AdoptThen(xatom.Atom(7), &b,
			xatom.CheckedFlush("lookup failed", xatom.FlushDone("done")),
		),
	)
	result := xatom.ExecError[string](f.in, protocol)
	errVal, isErr := result.GetLeft()
	if !isErr || errVal != "lookup failed" {
		t.Fatalf("got %v, want Left(%q)", result, "lookup failed")
	}
	if !a.Done() || !b.Done() {
		t.Fatal("slots left unwritten after Throw")
	}
	f.wantName(t, b.ID(), 7)
}

func TestExecErrorSuccess(t *testing.T) {
	f := newFixture()
	var a xatom.AtomSlot
	protocol := xatom.AdoptThen(xatom.Atom(5), &a,
		xatom.CheckedFlush("lookup failed", kont.Pure("ok")),
	)
	result := xatom.ExecError[string](f.in, protocol)
	v, ok := result.GetRight()
	if !ok || v != "ok" {
		t.Fatalf("got %v, want Right(%q)", result, "ok")
	}
	f.wantName(t, a.ID(), 5)
}

func TestExecExpr(t *testing.T) {
	f := newFixture()
	var a xatom.AtomSlot
	var name xatom.NameSlot
	protocol := xatom.ExprAdoptThen(xatom.Atom(31), &a,
		xatom.ExprLookupNameThen(xatom.Atom(33), &name,
			xatom.ExprFlushDone("done"),
		),
	)
	if got := xatom.ExecExpr(f.in, protocol); got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
	f.wantName(t, a.ID(), 31)
	if got, _ := name.Name(); got != "WINDOW" {
		t.Fatalf("escaped got %q, want %q", got, "WINDOW")
	}
}

func TestExecExprInternBind(t *testing.T) {
	f := newFixture()
	protocol := xatom.ExprInternBind(xatom.Atom(19), func(id xatom.ID) kont.Expr[xatom.ID] {
		return kont.ExprReturn(id)
	})
	id := xatom.ExecExpr(f.in, protocol)
	f.wantName(t, id, 19)
}

func TestStepAdvance(t *testing.T) {
	f := newFixture()
	var a xatom.AtomSlot
	protocol := xatom.ExprAdoptThen(xatom.Atom(8), &a, xatom.ExprFlushDone(true))

	_, susp := xatom.Step[bool](protocol)
	if susp == nil {
		t.Fatal("expected suspension for Adopt")
	}
	op, ok := susp.Op().(xatom.Adopt)
	if !ok || op.Atom != 8 {
		t.Fatalf("expected Adopt{Atom: 8}, got %#v", susp.Op())
	}

	_, susp = xatom.Advance(f.in, susp)
	if susp == nil {
		t.Fatal("expected suspension for Flush")
	}
	if _, ok := susp.Op().(xatom.Flush); !ok {
		t.Fatalf("expected Flush, got %T", susp.Op())
	}
	wantOutstanding(t, f.in, 1, 0, 0)

	result, susp := xatom.Advance(f.in, susp)
	if susp != nil || !result {
		t.Fatalf("got (%v, %v), want (true, nil)", result, susp)
	}
	f.wantName(t, a.ID(), 8)
}

func TestExecUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }
	f := newFixture()

	defer func() {
		r := recover()
		msg, ok := r.(string)
		if !ok || msg != "xatom: unhandled effect in internerHandler" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	xatom.Exec(f.in, kont.Perform(bogus{}))
}
