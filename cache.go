// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

// cacheEntry maps one server atom to its internal ID.
type cacheEntry struct {
	atom Atom
	id   ID
}

// Cache maps server atoms to internal IDs for one connection.
//
// Entries are append-only until the cache is invalidated by a connection
// change. Once the cache is full, further results are not stored: there is
// no eviction and entries are never reordered.
type Cache struct {
	conn    ConnID
	entries []cacheEntry
	stats   *counters
}

func newCache(conn ConnID, capacity int, stats *counters) *Cache {
	return &Cache{
		conn:    conn,
		entries: make([]cacheEntry, 0, capacity),
		stats:   stats,
	}
}

// Conn returns the connection the cache entries belong to.
func (c *Cache) Conn() ConnID {
	return c.conn
}

// Len returns the number of cached mappings.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Cap returns the maximum number of cached mappings.
func (c *Cache) Cap() int {
	return cap(c.entries)
}

// Lookup returns the ID cached for atom.
func (c *Cache) Lookup(atom Atom) (ID, bool) {
	for i := range c.entries {
		if c.entries[i].atom == atom {
			c.stats.cacheHits.Add(1)
			return c.entries[i].id, true
		}
	}
	c.stats.cacheMisses.Add(1)
	return NoID, false
}

// insert appends a mapping, dropping it if the cache is full.
func (c *Cache) insert(atom Atom, id ID) {
	if len(c.entries) == cap(c.entries) {
		c.stats.cacheDropped.Add(1)
		return
	}
	c.entries = append(c.entries, cacheEntry{atom: atom, id: id})
	c.stats.cacheEntries.Add(1)
}

// reset drops all entries and rebinds the cache to conn.
func (c *Cache) reset(conn ConnID) {
	c.conn = conn
	c.entries = c.entries[:0]
	c.stats.cacheEntries.Store(0)
	c.stats.cacheInvalidations.Add(1)
}
