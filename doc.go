// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xatom resolves windowing-server atoms into library-internal
// interned strings, batching and deduplicating the name lookups that cross
// the wire.
//
// # Architecture
//
//   - Context: owns the interning [Table] and a connection-scoped [Cache], created on first use
//     and invalidated when the connection it belongs to changes.
//   - Interner: per-session batching engine. [Interner.Resolve] defers lookups into bounded buffers;
//     [Interner.RoundTrip] sends nothing new and collects every outstanding reply in request order.
//   - Slots: callers own [AtomSlot] and [NameSlot] values. Each bound slot is written exactly once.
//   - Transport: any [Conn]. Package [code.hybscloud.com/xatom/wire] provides an in-process server
//     over lock-free bounded queues.
//
// # Failure Model
//
// A failed reply never aborts a batch. It sets the sticky [Interner.HadError] flag and
// writes [NoID] (or no string, on the escaped path) to the slots it would have satisfied.
//
// # Effects
//
// Resolution passes can be written as [code.hybscloud.com/kont] programs performing
// [Adopt], [LookupName], [Intern] and [Flush], then run with [Exec], [ExecExpr] or
// [ExecError], or stepped with [Step] and [Advance].
//
// # Example
//
//	ctx := xatom.NewContext()
//	in := xatom.NewInterner(ctx, conn)
//	slots := make([]xatom.AtomSlot, len(atoms))
//	for i, a := range atoms {
//		in.Resolve(a, &slots[i])
//	}
//	in.RoundTrip()
//	if in.HadError() {
//		// some slots hold NoID
//	}
package xatom
