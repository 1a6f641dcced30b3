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
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/metric"
)

// Config controls a Waiter. The zero value selects the defaults.
type Config struct {
	// SpinLimit is the number of HardwarePause iterations before the
	// Waiter moves to the yield tier. Zero selects DefaultSpinLimit();
	// a negative value disables the pause tier entirely.
	SpinLimit int

	// InitialYield and MaxYield bound the exponential yield durations of
	// the second tier. Zero values select 1µs and 1ms respectively.
	InitialYield time.Duration
	MaxYield     time.Duration

	// Stats, when non-nil, receives pause/yield counts shared across every
	// Waiter pointed at it.
	Stats *Stats

	// Meter, when non-nil, registers per-Waiter OpenTelemetry counters for
	// pause and yield events.
	Meter metric.Meter
}

const (
	defaultInitialYield = time.Microsecond
	defaultMaxYield     = time.Millisecond
)

// Waiter implements a two-tier spin-then-yield backoff: HardwarePause for
// the first SpinLimit rounds, then PreemptionYield with exponentially
// growing durations. A Waiter is intended to live on the stack of a single
// waiting goroutine; it is not safe for concurrent use.
type Waiter struct {
	spins    int
	limit    int
	bo       *backoff.ExponentialBackOff
	maxYield time.Duration
	stats    *Stats
	pauses   metric.Int64Counter
	yields   metric.Int64Counter
}

// NewWaiter returns a rearmed Waiter for the given configuration.
func NewWaiter(cfg Config) *Waiter {
	limit := cfg.SpinLimit
	switch {
	case limit == 0:
		limit = DefaultSpinLimit()
	case limit < 0:
		limit = 0
	}
	initial, max := cfg.InitialYield, cfg.MaxYield
	if initial <= 0 {
		initial = defaultInitialYield
	}
	if max <= 0 {
		max = defaultMaxYield
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initial
	bo.MaxInterval = max
	bo.MaxElapsedTime = 0 // the waiter itself never gives up
	bo.Reset()

	w := &Waiter{
		limit:    limit,
		bo:       bo,
		maxYield: max,
		stats:    cfg.Stats,
	}
	if cfg.Meter != nil {
		// Instrument creation failures leave the counter nil; the waiter
		// stays functional without it.
		w.pauses, _ = cfg.Meter.Int64Counter("spin.pauses",
			metric.WithDescription("Hardware pause hints issued by the waiter."))
		w.yields, _ = cfg.Meter.Int64Counter("spin.yields",
			metric.WithDescription("Preemption yields issued by the waiter."))
	}
	return w
}

// Wait performs one backoff step: a hardware pause while the spin budget
// lasts, a timed preemption yield afterwards. Call it each time the awaited
// condition is observed false.
func (w *Waiter) Wait() {
	if w.spins < w.limit {
		w.spins++
		HardwarePause()
		if w.stats != nil {
			w.stats.countPause()
		}
		if w.pauses != nil {
			w.pauses.Add(context.Background(), 1)
		}
		return
	}
	d := w.bo.NextBackOff()
	if d == backoff.Stop {
		d = w.maxYield
	}
	PreemptionYield(d)
	if w.stats != nil {
		w.stats.countYield()
	}
	if w.yields != nil {
		w.yields.Add(context.Background(), 1)
	}
}

// Yielding reports whether the waiter has exhausted its pause tier.
func (w *Waiter) Yielding() bool {
	return w.spins >= w.limit
}

// Reset rearms the waiter for a new wait: the spin budget and the yield
// durations start over.
func (w *Waiter) Reset() {
	w.spins = 0
	w.bo.Reset()
}
