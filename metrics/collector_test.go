// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/xatom"
	"code.hybscloud.com/xatom/metrics"
	"code.hybscloud.com/xatom/wire"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	values := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		m := mf.GetMetric()[0]
		if c := m.GetCounter(); c != nil {
			values[mf.GetName()] = c.GetValue()
			continue
		}
		values[mf.GetName()] = m.GetGauge().GetValue()
	}
	return values
}

func TestCollector(t *testing.T) {
	srv := wire.NewServer()
	ctx := xatom.NewContext()
	in := xatom.NewInterner(ctx, wire.Dial(srv))

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(metrics.NewCollector(ctx, prometheus.Labels{"context": "keymap"}))

	slots := make([]xatom.AtomSlot, 4)
	for i, a := range []xatom.Atom{5, 7, 5, 9999} {
		in.Resolve(a, &slots[i])
	}
	in.RoundTrip()
	var hit xatom.AtomSlot
	in.Resolve(5, &hit)

	got := gather(t, reg)
	want := map[string]float64{
		"xatom_cache_entries":             2,
		"xatom_cache_hits_total":          1,
		"xatom_requests_total":            3,
		"xatom_deduplicated_total":        1,
		"xatom_round_trips_total":         1,
		"xatom_reply_failures_total":      1,
		"xatom_cache_invalidations_total": 0,
		"xatom_escaped_requests_total":    0,
		"xatom_cache_dropped_total":       0,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s got %v, want %v", name, got[name], v)
		}
	}
	if len(got) != 10 {
		t.Fatalf("metric families got %d, want 10", len(got))
	}
}
