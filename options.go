// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xatom

import "log/slog"

// Default capacities.
const (
	// DefaultCacheCapacity bounds the number of cached atom mappings per context.
	DefaultCacheCapacity = 256
	// DefaultPendingCapacity bounds in-flight name lookups per interner.
	DefaultPendingCapacity = 128
	// DefaultCopiesCapacity bounds deduplicated bindings per interner.
	DefaultCopiesCapacity = 128
	// DefaultEscapedCapacity bounds outstanding escaped-name requests.
	// Small on purpose: the escaped path is rare and not pipelined deeply.
	DefaultEscapedCapacity = 4
)

type config struct {
	cacheCap   int
	pendingCap int
	copiesCap  int
	escapedCap int
	escape     func([]byte)
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		cacheCap:   DefaultCacheCapacity,
		pendingCap: DefaultPendingCapacity,
		copiesCap:  DefaultCopiesCapacity,
		escapedCap: DefaultEscapedCapacity,
		escape:     EscapeName,
		logger:     slog.New(slog.DiscardHandler),
	}
}

// Option configures a [Context].
type Option func(*config)

// WithCacheCapacity sets the cache capacity. A capacity of 0 or less
// disables caching: every lookup misses and nothing is stored.
func WithCacheCapacity(n int) Option {
	return func(c *config) {
		c.cacheCap = max(n, 0)
	}
}

// WithPendingCapacity sets how many name lookups an interner keeps in flight
// before it round-trips on its own.
func WithPendingCapacity(n int) Option {
	return func(c *config) {
		c.pendingCap = max(n, 1)
	}
}

// WithCopiesCapacity sets how many deduplicated bindings an interner keeps
// before it round-trips on its own.
func WithCopiesCapacity(n int) Option {
	return func(c *config) {
		c.copiesCap = max(n, 1)
	}
}

// WithEscapedCapacity sets the maximum number of outstanding escaped-name
// requests between round trips.
func WithEscapedCapacity(n int) Option {
	return func(c *config) {
		c.escapedCap = max(n, 1)
	}
}

// WithEscaper replaces [EscapeName] as the transform applied to escaped names.
func WithEscaper(f func([]byte)) Option {
	return func(c *config) {
		if f != nil {
			c.escape = f
		}
	}
}

// WithLogger sets the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
