// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports [xatom.Context] statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/xatom"
)

const namespace = "xatom"

type metric struct {
	desc  *prometheus.Desc
	kind  prometheus.ValueType
	value func(xatom.Stats) uint64
}

// Collector reads a context's counters on every scrape.
// Scrapes may run concurrently with the goroutine that owns the context.
type Collector struct {
	ctx     *xatom.Context
	metrics []metric
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for ctx. constLabels are attached to
// every series, e.g. to tell several contexts apart.
func NewCollector(ctx *xatom.Context, constLabels prometheus.Labels) *Collector {
	def := func(name, help string, kind prometheus.ValueType, value func(xatom.Stats) uint64) metric {
		return metric{
			desc:  prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels),
			kind:  kind,
			value: value,
		}
	}
	return &Collector{
		ctx: ctx,
		metrics: []metric{
			def("cache_entries", "Atom mappings currently cached.", prometheus.GaugeValue,
				func(s xatom.Stats) uint64 { return s.CacheEntries }),
			def("cache_hits_total", "Cache lookups that found a mapping.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.CacheHits }),
			def("cache_misses_total", "Cache lookups that found no mapping.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.CacheMisses }),
			def("cache_dropped_total", "Mappings not cached because the cache was full.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.CacheDropped }),
			def("cache_invalidations_total", "Cache resets caused by a connection change.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.CacheInvalidations }),
			def("requests_total", "Name lookups sent for resolution.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.Requests }),
			def("deduplicated_total", "Resolutions served by an already pending lookup.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.Deduplicated }),
			def("escaped_requests_total", "Name lookups sent for escaped names.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.EscapedRequests }),
			def("round_trips_total", "Completed round trips.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.RoundTrips }),
			def("reply_failures_total", "Replies that could not be obtained.", prometheus.CounterValue,
				func(s xatom.Stats) uint64 { return s.ReplyFailures }),
		},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for i := range c.metrics {
		ch <- c.metrics[i].desc
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.ctx.Stats()
	for i := range c.metrics {
		m := &c.metrics[i]
		ch <- prometheus.MustNewConstMetric(m.desc, m.kind, float64(m.value(s)))
	}
}
