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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/srediag/go-atomics/pkg/atomics"
	"github.com/srediag/go-atomics/pkg/order"
)

func TestWaiterTierTransition(t *testing.T) {
	var stats Stats
	w := NewWaiter(Config{
		SpinLimit:    3,
		InitialYield: time.Microsecond,
		MaxYield:     10 * time.Microsecond,
		Stats:        &stats,
	})

	for i := 0; i < 3; i++ {
		assert.False(t, w.Yielding(), "round %d should still be in the pause tier", i)
		w.Wait()
	}
	assert.True(t, w.Yielding())
	w.Wait()
	w.Wait()

	assert.Equal(t, uint64(3), stats.Pauses())
	assert.Equal(t, uint64(2), stats.Yields())

	w.Reset()
	assert.False(t, w.Yielding())
	w.Wait()
	assert.Equal(t, uint64(4), stats.Pauses())
}

func TestWaiterDisabledPauseTier(t *testing.T) {
	var stats Stats
	w := NewWaiter(Config{
		SpinLimit:    -1,
		InitialYield: time.Microsecond,
		MaxYield:     10 * time.Microsecond,
		Stats:        &stats,
	})
	assert.True(t, w.Yielding())
	w.Wait()
	assert.Equal(t, uint64(0), stats.Pauses())
	assert.Equal(t, uint64(1), stats.Yields())
}

func TestWaiterWithMeter(t *testing.T) {
	w := NewWaiter(Config{
		SpinLimit:    1,
		InitialYield: time.Microsecond,
		MaxYield:     10 * time.Microsecond,
		Meter:        noop.NewMeterProvider().Meter("spin_test"),
	})
	w.Wait()
	w.Wait()
}

func TestWaiterBackoffLoop(t *testing.T) {
	// End-to-end: one goroutine publishes a flag, another backs off until
	// it observes the release.
	var flag atomics.Bool
	flag.Init(false)

	go func() {
		time.Sleep(time.Millisecond)
		flag.Store(true, order.StoreRelease)
	}()

	w := NewWaiter(Config{
		InitialYield: 10 * time.Microsecond,
		MaxYield:     100 * time.Microsecond,
	})
	for !flag.Load(order.LoadAcquire) {
		w.Wait()
	}
}
