// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// AdoptThen binds out to atom and then continues with next.
// Fuses Perform(Adopt{...}) + Then.
func AdoptThen[B any](atom Atom, out *AtomSlot, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Adopt{Atom: atom, Out: out}), next)
}

// LookupNameThen binds out to the escaped name of atom and then continues
// with next. Fuses Perform(LookupName{...}) + Then.
func LookupNameThen[B any](atom Atom, out *NameSlot, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(LookupName{Atom: atom, Out: out}), next)
}

// InternBind resolves atom immediately and passes the ID to f.
// Fuses Perform(Intern{...}) + Bind.
func InternBind[B any](atom Atom, f func(ID) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Intern{Atom: atom}), f)
}

// FlushDone round-trips and returns a.
// Fuses Perform(Flush{}) + Then + Pure.
func FlushDone[A any](a A) kont.Eff[A] {
	return kont.Then(kont.Perform(Flush{}), kont.Pure(a))
}

// FlushBind round-trips and passes whether every reply so far succeeded to f.
// Fuses Perform(Flush{}) + Bind.
func FlushBind[B any](f func(ok bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Flush{}), f)
}

// AdoptAll binds each atom to the slot at the same index and then continues
// with next. len(out) must be at least len(atoms).
func AdoptAll[B any](atoms []Atom, out []AtomSlot, next kont.Eff[B]) kont.Eff[B] {
	m := next
	for i := len(atoms) - 1; i >= 0; i-- {
		m = AdoptThen(atoms[i], &out[i], m)
	}
	return m
}
