// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"code.hybscloud.com/kont"
)

// internerDispatcher is the structural interface for interner operations.
// DispatchInterner runs synchronously on the caller's goroutine; the only
// wait is for replies inside a round trip.
type internerDispatcher interface {
	DispatchInterner(in *Interner) kont.Resumed
}

// unit is the pre-boxed Resumed value for operations that resume with struct{}.
var unit kont.Resumed = struct{}{}

// Adopt is the effect operation for resolving a server atom into a slot.
// Perform(Adopt{Atom: a, Out: &slot}) defers like [Interner.Resolve].
type Adopt struct {
	kont.Phantom[struct{}]
	Atom Atom
	Out  *AtomSlot
}

// DispatchInterner handles Adopt via Interner.Resolve.
func (o Adopt) DispatchInterner(in *Interner) kont.Resumed {
	in.Resolve(o.Atom, o.Out)
	return unit
}

// LookupName is the effect operation for requesting an escaped atom name.
// Perform(LookupName{Atom: a, Out: &slot}) defers like
// [Interner.RequestEscapedName].
type LookupName struct {
	kont.Phantom[struct{}]
	Atom Atom
	Out  *NameSlot
}

// DispatchInterner handles LookupName via Interner.RequestEscapedName.
func (o LookupName) DispatchInterner(in *Interner) kont.Resumed {
	in.RequestEscapedName(o.Atom, o.Out)
	return unit
}

// Intern is the effect operation for resolving a server atom immediately.
// Perform(Intern{Atom: a}) resumes with the internal ID, round-tripping
// first when the atom cannot be answered without the wire.
type Intern struct {
	kont.Phantom[ID]
	Atom Atom
}

// DispatchInterner handles Intern via Interner.Resolve and, when the
// result is deferred, Interner.RoundTrip.
func (o Intern) DispatchInterner(in *Interner) kont.Resumed {
	var slot AtomSlot
	in.Resolve(o.Atom, &slot)
	if !slot.Done() {
		in.RoundTrip()
	}
	return slot.ID()
}

// Pre-boxed Flush results, avoiding per-dispatch heap escape.
var (
	flushOK     kont.Resumed = true
	flushFailed kont.Resumed = false
)

// Flush is the effect operation for an explicit round trip.
// Perform(Flush{}) resumes with true if no reply has failed since Init.
type Flush struct {
	kont.Phantom[bool]
}

// DispatchInterner handles Flush via Interner.RoundTrip.
func (Flush) DispatchInterner(in *Interner) kont.Resumed {
	in.RoundTrip()
	if in.HadError() {
		return flushFailed
	}
	return flushOK
}
