// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"log/slog"
)

// pendingEntry is one in-flight name lookup whose reply is not yet consumed.
type pendingEntry struct {
	atom   Atom
	out    *AtomSlot
	cookie Cookie
}

// copyEntry binds a slot to the reply of a pending lookup for the same atom.
type copyEntry struct {
	atom Atom
	out  *AtomSlot
}

// escapedEntry is one in-flight raw name request.
type escapedEntry struct {
	atom   Atom
	cookie Cookie
	out    *NameSlot
}

// Interner batches server atom resolution for one session, typically one
// keymap build.
//
// [Interner.Resolve] defers work into bounded buffers. A buffer that fills
// up triggers a round trip; otherwise the caller flushes with
// [Interner.RoundTrip]. Lookups for an atom that is already in flight are
// deduplicated onto the pending request.
//
// The zero value is unusable until [Interner.Init]. An Interner is not safe
// for concurrent use.
type Interner struct {
	ctx      *Context
	conn     Conn
	pending  []pendingEntry
	copies   []copyEntry
	escaped  []escapedEntry
	hadError bool

	// Bounds from the bound context; buffer capacity may exceed them
	// when storage is reused across Init.
	pendingCap int
	copiesCap  int
	escapedCap int
}

// NewInterner returns an interner bound to ctx and conn.
func NewInterner(ctx *Context, conn Conn) *Interner {
	in := &Interner{}
	in.Init(ctx, conn)
	return in
}

// Init binds the interner to ctx and conn, empties every buffer and clears
// the error flag. Init may be called again to reuse the interner: work still
// outstanding from the previous binding is round-tripped on that binding
// first, so every slot bound before Init is done when it returns.
func (in *Interner) Init(ctx *Context, conn Conn) {
	if in.ctx != nil {
		in.drain()
	}
	in.ctx = ctx
	in.conn = conn
	in.pendingCap = ctx.cfg.pendingCap
	in.copiesCap = ctx.cfg.copiesCap
	in.escapedCap = ctx.cfg.escapedCap
	in.pending = growBuffer(in.pending, in.pendingCap)
	in.copies = growBuffer(in.copies, in.copiesCap)
	in.escaped = growBuffer(in.escaped, in.escapedCap)
	in.hadError = false
}

// growBuffer returns buf emptied with at least capacity n.
func growBuffer[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, 0, n)
	}
	clear(buf)
	return buf[:0]
}

// HadError reports whether any reply failed since Init.
// The flag is sticky: round trips never clear it.
func (in *Interner) HadError() bool {
	return in.hadError
}

// Outstanding returns the number of pending lookups, deduplicated bindings
// and escaped-name requests waiting for the next round trip.
func (in *Interner) Outstanding() (pending, copies, escaped int) {
	return len(in.pending), len(in.copies), len(in.escaped)
}

// Resolve binds out to the internal ID of atom.
//
// None and cached atoms are written to out immediately. An atom that is
// already pending is deduplicated onto the in-flight lookup; any other atom
// issues one lookup on the connection. In both deferred cases out is
// written by the round trip that drains it. Resolve performs that round
// trip itself when the relevant buffer is full.
func (in *Interner) Resolve(atom Atom, out *AtomSlot) {
	out.bind()
	for {
		if atom == None {
			out.set(NoID)
			return
		}
		if c := in.ctx.cacheFor(in.conn.ID()); c != nil {
			if id, ok := c.Lookup(atom); ok {
				out.set(id)
				return
			}
		}
		if !in.isPending(atom) {
			break
		}
		if len(in.copies) < in.copiesCap {
			in.copies = append(in.copies, copyEntry{atom: atom, out: out})
			in.ctx.stats.deduplicated.Add(1)
			return
		}
		in.RoundTrip()
	}

	if len(in.pending) >= in.pendingCap {
		in.RoundTrip()
	}
	cookie := in.conn.GetAtomName(atom)
	in.ctx.stats.requests.Add(1)
	in.pending = append(in.pending, pendingEntry{atom: atom, out: out, cookie: cookie})
}

func (in *Interner) isPending(atom Atom) bool {
	for i := range in.pending {
		if in.pending[i].atom == atom {
			return true
		}
	}
	return false
}

// RequestEscapedName binds out to the escaped name of atom.
//
// The request bypasses the cache and deduplication. None is written to out
// immediately as no string. Issuing more requests than the escaped capacity
// between two round trips panics.
func (in *Interner) RequestEscapedName(atom Atom, out *NameSlot) {
	out.bind()
	if atom == None {
		out.set("", false)
		return
	}
	if len(in.escaped) >= in.escapedCap {
		panic("xatom: too many outstanding escaped name requests")
	}
	cookie := in.conn.GetAtomName(atom)
	in.ctx.stats.escapedRequests.Add(1)
	in.escaped = append(in.escaped, escapedEntry{atom: atom, cookie: cookie, out: out})
}

// RoundTrip waits for every outstanding reply and writes every bound slot.
//
// Replies are consumed in request order. A failed reply sets the error flag
// and writes NoID (or no string) to the affected slots; the remaining
// entries are still processed.
func (in *Interner) RoundTrip() {
	ctx := in.ctx
	var cache *Cache
	if len(in.pending) > 0 {
		cache = ctx.cacheFor(in.conn.ID())
	}
	for i := range in.pending {
		p := &in.pending[i]
		id := NoID
		name, err := in.conn.GetAtomNameReply(p.cookie)
		if err != nil {
			in.fail("atom name reply failed", p.atom, err)
		} else {
			id = ctx.table.InternBytes(name)
			if cache != nil {
				cache.insert(p.atom, id)
			}
		}
		p.out.set(id)
		for j := range in.copies {
			if in.copies[j].atom == p.atom {
				in.copies[j].out.set(id)
			}
		}
	}

	for i := range in.escaped {
		e := &in.escaped[i]
		name, err := in.conn.GetAtomNameReply(e.cookie)
		if err != nil {
			in.fail("escaped name reply failed", e.atom, err)
			e.out.set("", false)
			continue
		}
		owned := make([]byte, len(name))
		copy(owned, name)
		ctx.cfg.escape(owned)
		e.out.set(string(owned), true)
	}

	ctx.stats.roundTrips.Add(1)
	ctx.cfg.logger.Debug("xatom: round trip",
		slog.Int("pending", len(in.pending)),
		slog.Int("copies", len(in.copies)),
		slog.Int("escaped", len(in.escaped)),
		slog.Bool("had_error", in.hadError))

	in.pending = growBuffer(in.pending, 0)
	in.copies = growBuffer(in.copies, 0)
	in.escaped = growBuffer(in.escaped, 0)
}

func (in *Interner) fail(msg string, atom Atom, err error) {
	in.hadError = true
	in.ctx.stats.replyFailures.Add(1)
	in.ctx.cfg.logger.Warn("xatom: "+msg,
		slog.Uint64("atom", uint64(atom)),
		slog.Any("error", err))
}
