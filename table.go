// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"fmt"

	"fortio.org/safecast"
)

// Table interns strings into [ID]s.
// ID 0 is reserved for the empty string and is returned by [NoID].
//
// The zero value of Table is empty and ready to use.
type Table struct {
	byID  []string
	index map[string]ID
}

// InternBytes interns name and returns its ID.
// Never fails: a name seen before returns the ID it was first given.
func (t *Table) InternBytes(name []byte) ID {
	if len(name) == 0 {
		return NoID
	}
	if id, ok := t.index[string(name)]; ok {
		return id
	}
	return t.insert(string(name))
}

// Intern is InternBytes for a string.
func (t *Table) Intern(name string) ID {
	if name == "" {
		return NoID
	}
	if id, ok := t.index[name]; ok {
		return id
	}
	return t.insert(name)
}

func (t *Table) insert(s string) ID {
	if t.byID == nil {
		t.byID = append(t.byID, "")
		t.index = make(map[string]ID)
	}
	t.byID = append(t.byID, s)
	n, err := safecast.Conv[uint32](len(t.byID) - 1)
	if err != nil {
		panic(fmt.Errorf("xatom: intern table overflow: %w", err))
	}
	id := ID(n)
	t.index[s] = id
	return id
}

// Lookup reports whether name has been interned without interning it.
func (t *Table) Lookup(name string) (ID, bool) {
	if name == "" {
		return NoID, true
	}
	id, ok := t.index[name]
	return id, ok
}

// Text returns the string for id, or "" and false if id is unknown.
func (t *Table) Text(id ID) (string, bool) {
	if id == NoID {
		return "", true
	}
	if int(id) >= len(t.byID) {
		return "", false
	}
	return t.byID[id], true
}

// Len returns the number of interned strings, excluding the empty string.
func (t *Table) Len() int {
	if len(t.byID) == 0 {
		return 0
	}
	return len(t.byID) - 1
}
