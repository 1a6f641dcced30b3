/*
 * Copyright 2025 SREDiag Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package spin

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/srediag/go-atomics/pkg/atomics"
	"github.com/srediag/go-atomics/pkg/order"
)

// Stats aggregates spin activity across every Waiter that shares it. The
// counters are this module's own atomic cells, so sharing one Stats between
// goroutines is safe; the relaxed ordering is enough for monotonic
// counters.
type Stats struct {
	pauses atomics.Uint64
	yields atomics.Uint64
}

func (s *Stats) countPause() {
	s.pauses.FetchAdd(1, order.Relaxed)
}

func (s *Stats) countYield() {
	s.yields.FetchAdd(1, order.Relaxed)
}

// Pauses returns the total hardware pauses recorded.
func (s *Stats) Pauses() uint64 {
	return s.pauses.Load(order.LoadRelaxed)
}

// Yields returns the total preemption yields recorded.
func (s *Stats) Yields() uint64 {
	return s.yields.Load(order.LoadRelaxed)
}

// Collector exposes a Stats as Prometheus counters.
type Collector struct {
	stats  *Stats
	pauses *prometheus.Desc
	yields *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a prometheus.Collector reading from s.
func NewCollector(s *Stats) *Collector {
	return &Collector{
		stats: s,
		pauses: prometheus.NewDesc(
			"spin_pauses_total",
			"Hardware pause hints issued by spin waiters.",
			nil, nil,
		),
		yields: prometheus.NewDesc(
			"spin_yields_total",
			"Preemption yields issued by spin waiters.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pauses
	ch <- c.yields
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.pauses, prometheus.CounterValue, float64(c.stats.Pauses()))
	ch <- prometheus.MustNewConstMetric(c.yields, prometheus.CounterValue, float64(c.stats.Yields()))
}
