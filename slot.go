// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

type slotState uint8

const (
	slotIdle slotState = iota
	slotBound
	slotDone
)

// AtomSlot receives the internal ID of a resolved atom.
//
// Slots are owned by the caller, usually as elements of a results slice.
// A slot passed to [Interner.Resolve] is written exactly once: immediately
// on the fast paths, otherwise by the round trip that drains it. A slot may
// be reused once it is done.
type AtomSlot struct {
	id    ID
	state slotState
}

// ID returns the resolved ID, or NoID if the slot is not done.
func (s *AtomSlot) ID() ID {
	return s.id
}

// Done reports whether the slot has been written.
func (s *AtomSlot) Done() bool {
	return s.state == slotDone
}

func (s *AtomSlot) bind() {
	if s.state == slotBound {
		panic("xatom: atom slot bound twice")
	}
	s.id = NoID
	s.state = slotBound
}

func (s *AtomSlot) set(id ID) {
	if s.state != slotBound {
		panic("xatom: atom slot written twice")
	}
	s.id = id
	s.state = slotDone
}

// NameSlot receives an escaped atom name.
// Same ownership and write-once rules as [AtomSlot].
type NameSlot struct {
	name  string
	ok    bool
	state slotState
}

// Name returns the escaped name. ok is false when no string was produced:
// for None, for a failed reply, or before the slot is done.
func (s *NameSlot) Name() (name string, ok bool) {
	return s.name, s.ok
}

// Done reports whether the slot has been written.
func (s *NameSlot) Done() bool {
	return s.state == slotDone
}

func (s *NameSlot) bind() {
	if s.state == slotBound {
		panic("xatom: name slot bound twice")
	}
	s.name, s.ok = "", false
	s.state = slotBound
}

func (s *NameSlot) set(name string, ok bool) {
	if s.state != slotBound {
		panic("xatom: name slot written twice")
	}
	s.name, s.ok = name, ok
	s.state = slotDone
}
