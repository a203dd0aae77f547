// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/xatom"
	"code.hybscloud.com/xatom/wire"
)

// BenchmarkResolveCached measures the cache-hit fast path.
func BenchmarkResolveCached(b *testing.B) {
	f := newFixture()
	var s xatom.AtomSlot
	f.in.Resolve(xatom.Atom(31), &s)
	f.in.RoundTrip()
	b.ReportAllocs()
	for b.Loop() {
		f.in.Resolve(xatom.Atom(31), &s)
	}
}

// BenchmarkRoundTrip measures one batch of distinct lookups on a fresh cache.
func BenchmarkRoundTrip(b *testing.B) {
	srv := wire.NewServer()
	conn := wire.Dial(srv)
	atoms := make([]xatom.Atom, 32)
	for i := range atoms {
		atoms[i] = xatom.Atom(i + 1)
	}
	slots := make([]xatom.AtomSlot, len(atoms))
	var in xatom.Interner
	b.ReportAllocs()
	for b.Loop() {
		ctx := xatom.NewContext()
		in.Init(ctx, conn)
		for i, a := range atoms {
			in.Resolve(a, &slots[i])
		}
		in.RoundTrip()
	}
}

// BenchmarkResolveDuplicates measures a batch dominated by duplicates.
func BenchmarkResolveDuplicates(b *testing.B) {
	srv := wire.NewServer()
	conn := wire.Dial(srv)
	slots := make([]xatom.AtomSlot, 64)
	var in xatom.Interner
	b.ReportAllocs()
	for b.Loop() {
		ctx := xatom.NewContext()
		in.Init(ctx, conn)
		for i := range slots {
			in.Resolve(xatom.Atom(i%4)+1, &slots[i])
		}
		in.RoundTrip()
	}
}

// BenchmarkExecAdoptAll measures the effect-based path for one batch.
func BenchmarkExecAdoptAll(b *testing.B) {
	srv := wire.NewServer()
	conn := wire.Dial(srv)
	atoms := []xatom.Atom{5, 7, 5, 0, 7, 31, 33, 39}
	slots := make([]xatom.AtomSlot, len(atoms))
	var in xatom.Interner
	b.ReportAllocs()
	for b.Loop() {
		in.Init(xatom.NewContext(), conn)
		xatom.Exec(&in, xatom.AdoptAll(atoms, slots, kont.Pure(struct{}{})))
	}
}
