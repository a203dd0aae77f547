// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wire provides an in-process atom server and a pipelined
// connection to it that implements [code.hybscloud.com/xatom.Conn].
//
// # Architecture
//
//   - Server: the atom namespace. Seeded with the predefined atoms, extended with [Server.InternAtom].
//   - Conn: a request queue and a reply queue, both bounded lock-free SPSC queues from lfq.
//   - Pumping: when a queue would block, the connection serves the peer on the calling goroutine
//     and backs off with iox.Backoff when neither side can make progress. No goroutines, no channels.
//
// A Conn is used by one goroutine. A Server may back many connections on
// different goroutines.
package wire
