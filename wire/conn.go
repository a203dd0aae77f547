// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/xatom"
)

// queueCapacity is the bounded capacity of each direction of a connection.
// Deeper pipelines than this are served by pumping the server inline.
const queueCapacity = 64

type request struct {
	seq  xatom.Cookie
	atom xatom.Atom
}

type reply struct {
	seq  xatom.Cookie
	name []byte
	err  error
}

// Conn is a pipelined connection to a [Server].
//
// Requests go out on a bounded SPSC queue and replies come back on another,
// in request order. Whenever a queue would block, the connection serves the
// server side itself on the calling goroutine. Not safe for concurrent use.
type Conn struct {
	id       xatom.ConnID
	srv      *Server
	reqQ     lfq.SPSC[request]
	repQ     lfq.SPSC[reply]
	seq      xatom.Cookie
	lastSeen xatom.Cookie
	held     reply
	holding  bool
	stash    map[xatom.Cookie]reply
	closed   bool
	requests atomix.Uint32
}

var _ xatom.Conn = (*Conn)(nil)

// Dial returns a new connection to srv with a fresh identity.
func Dial(srv *Server) *Conn {
	c := &Conn{
		id:    nextID(),
		srv:   srv,
		stash: make(map[xatom.Cookie]reply),
	}
	c.reqQ.Init(queueCapacity)
	c.repQ.Init(queueCapacity)
	return c
}

// ID returns the connection identity.
func (c *Conn) ID() xatom.ConnID {
	return c.id
}

// Requests returns the number of name lookups sent on the connection.
func (c *Conn) Requests() uint32 {
	return c.requests.Load()
}

// Close rejects further requests. Replies to requests already sent are
// still delivered.
func (c *Conn) Close() error {
	c.closed = true
	return nil
}

// GetAtomName sends a name lookup for atom and returns its cookie.
func (c *Conn) GetAtomName(atom xatom.Atom) xatom.Cookie {
	c.seq++
	if c.closed {
		c.stash[c.seq] = reply{seq: c.seq, err: ErrClosed}
		return c.seq
	}
	req := request{seq: c.seq, atom: atom}
	var bo iox.Backoff
	for c.reqQ.Enqueue(&req) != nil {
		if c.serve() || c.collect() {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
	c.requests.Add(1)
	return c.seq
}

// GetAtomNameReply waits for the reply to cookie.
// Replies for other cookies that arrive first are kept until asked for.
func (c *Conn) GetAtomNameReply(cookie xatom.Cookie) ([]byte, error) {
	if r, ok := c.stash[cookie]; ok {
		delete(c.stash, cookie)
		return r.name, r.err
	}
	if cookie == 0 || cookie > c.seq || cookie <= c.lastSeen {
		return nil, ErrBadCookie
	}
	var bo iox.Backoff
	for {
		r, err := c.repQ.Dequeue()
		if err == nil {
			c.lastSeen = r.seq
			if r.seq == cookie {
				return r.name, r.err
			}
			c.stash[r.seq] = r
			bo.Reset()
			continue
		}
		if c.serve() {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}

// serve moves at most one request through the server. Reports progress.
func (c *Conn) serve() bool {
	if !c.holding {
		req, err := c.reqQ.Dequeue()
		if err != nil {
			return false
		}
		c.held = c.srv.reply(req)
		c.holding = true
	}
	if err := c.repQ.Enqueue(&c.held); err != nil {
		return false
	}
	c.held = reply{}
	c.holding = false
	return true
}

// collect moves one arrived reply into the stash. Reports progress.
func (c *Conn) collect() bool {
	r, err := c.repQ.Dequeue()
	if err != nil {
		return false
	}
	c.lastSeen = r.seq
	c.stash[r.seq] = r
	return true
}

// reply answers one request on behalf of the server.
func (s *Server) reply(req request) reply {
	name, err := s.AtomName(req.atom)
	if err != nil {
		return reply{seq: req.seq, err: err}
	}
	return reply{seq: req.seq, name: []byte(name)}
}
