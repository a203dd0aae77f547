// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom_test

import (
	"errors"
	"strconv"
	"testing"

	"code.hybscloud.com/xatom"
	"code.hybscloud.com/xatom/wire"
)

var errInjected = errors.New("injected failure")

// fixture is one context with an interner on a fresh connection.
type fixture struct {
	srv  *wire.Server
	conn *wire.Conn
	ctx  *xatom.Context
	in   *xatom.Interner
}

func newFixture(opts ...xatom.Option) *fixture {
	srv := wire.NewServer()
	conn := wire.Dial(srv)
	ctx := xatom.NewContext(opts...)
	return &fixture{srv: srv, conn: conn, ctx: ctx, in: xatom.NewInterner(ctx, conn)}
}

// intern creates n fresh atoms named prefix0..prefixN-1 on the server.
func (f *fixture) intern(tb testing.TB, prefix string, n int) []xatom.Atom {
	tb.Helper()
	atoms := make([]xatom.Atom, n)
	for i := range atoms {
		a, err := f.srv.InternAtom(prefix+strconv.Itoa(i), false)
		if err != nil {
			tb.Fatalf("InternAtom: %v", err)
		}
		atoms[i] = a
	}
	return atoms
}

// wantName fails unless id is the internal ID of the server name of atom.
func (f *fixture) wantName(tb testing.TB, id xatom.ID, atom xatom.Atom) {
	tb.Helper()
	name, err := f.srv.AtomName(atom)
	if err != nil {
		tb.Fatalf("AtomName(%d): %v", atom, err)
	}
	got, ok := f.ctx.Table().Text(id)
	if !ok || got != name {
		tb.Fatalf("atom %d resolved to %q (ok=%v), want %q", atom, got, ok, name)
	}
}
