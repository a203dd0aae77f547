// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

// Atom is a server-assigned identifier for an interned string.
// Atom values are only meaningful on the connection that produced them.
type Atom uint32

// None is the reserved server atom. It is never sent in a lookup request.
const None Atom = 0

// ID is an interned string in a [Table].
// IDs from the same table compare equal iff their strings are equal.
type ID uint32

// NoID is the internal counterpart of [None].
const NoID ID = 0

// ConnID identifies a wire connection. It is compared for equality only.
type ConnID = uint32

// Cookie is the handle of an in-flight request on a [Conn].
type Cookie = uint32

// Conn is the wire connection consumed by [Interner].
//
// GetAtomName issues a name lookup for a non-None atom and returns
// immediately. GetAtomNameReply waits for the reply of a previously issued
// lookup and returns the raw name bytes. The returned slice may alias
// transport buffers; callers copy what they keep.
type Conn interface {
	ID() ConnID
	GetAtomName(atom Atom) Cookie
	GetAtomNameReply(c Cookie) ([]byte, error)
}
