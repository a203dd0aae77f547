// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import (
	"log/slog"

	"code.hybscloud.com/atomix"
)

// Context owns the internal atom [Table] and the connection-scoped
// [Cache] shared by every [Interner] bound to it.
//
// A Context is not safe for concurrent use. Callers that share one across
// goroutines serialize all access to it and to its interners. [Context.Stats]
// is the exception and may be called from any goroutine.
type Context struct {
	cfg   config
	table Table
	cache *Cache
	stats counters
}

// NewContext returns an empty context configured by opts.
func NewContext(opts ...Option) *Context {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Context{cfg: cfg}
}

// Table returns the context's interning table.
func (ctx *Context) Table() *Table {
	return &ctx.table
}

// Logger returns the context's logger.
func (ctx *Context) Logger() *slog.Logger {
	return ctx.cfg.logger
}

// Cache returns the context's cache without creating it.
// Returns nil before first use or when caching is disabled.
func (ctx *Context) Cache() *Cache {
	return ctx.cache
}

// cacheFor returns the cache for conn, creating it on first call.
// A cache recorded for another connection is invalidated before it is
// returned. Returns nil when caching is disabled.
func (ctx *Context) cacheFor(conn ConnID) *Cache {
	if ctx.cache == nil {
		if ctx.cfg.cacheCap <= 0 {
			return nil
		}
		ctx.cache = newCache(conn, ctx.cfg.cacheCap, &ctx.stats)
		return ctx.cache
	}
	if ctx.cache.conn != conn {
		ctx.cfg.logger.Debug("xatom: cache invalidated",
			slog.Uint64("from", uint64(ctx.cache.conn)),
			slog.Uint64("to", uint64(conn)),
			slog.Int("entries", len(ctx.cache.entries)))
		ctx.cache.reset(conn)
	}
	return ctx.cache
}

// Stats is a snapshot of a context's counters.
type Stats struct {
	CacheEntries       uint64
	CacheHits          uint64
	CacheMisses        uint64
	CacheDropped       uint64
	CacheInvalidations uint64
	Requests           uint64
	Deduplicated       uint64
	EscapedRequests    uint64
	RoundTrips         uint64
	ReplyFailures      uint64
}

// counters are updated by the owning goroutine and read by Stats.
type counters struct {
	cacheEntries       atomix.Uint64
	cacheHits          atomix.Uint64
	cacheMisses        atomix.Uint64
	cacheDropped       atomix.Uint64
	cacheInvalidations atomix.Uint64
	requests           atomix.Uint64
	deduplicated       atomix.Uint64
	escapedRequests    atomix.Uint64
	roundTrips         atomix.Uint64
	replyFailures      atomix.Uint64
}

// Stats returns the context's counters. Safe for concurrent use.
func (ctx *Context) Stats() Stats {
	c := &ctx.stats
	return Stats{
		CacheEntries:       c.cacheEntries.Load(),
		CacheHits:          c.cacheHits.Load(),
		CacheMisses:        c.cacheMisses.Load(),
		CacheDropped:       c.cacheDropped.Load(),
		CacheInvalidations: c.cacheInvalidations.Load(),
		Requests:           c.requests.Load(),
		Deduplicated:       c.deduplicated.Load(),
		EscapedRequests:    c.escapedRequests.Load(),
		RoundTrips:         c.roundTrips.Load(),
		ReplyFailures:      c.replyFailures.Load(),
	}
}
