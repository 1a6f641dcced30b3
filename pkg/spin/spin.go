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

// Package spin provides the busy-wait side of the primitive layer: the
// hardware spin-wait hint, the OS-level voluntary yield, and a two-tier
// spin-then-yield Waiter for backoff loops built around the atomic cells.
package spin

import (
	"time"

	"github.com/srediag/go-atomics/internal/cpu"
)

// HardwarePause emits the cheapest available spin-wait hint to the
// processor (PAUSE on amd64, YIELD on arm64, a no-op elsewhere). It has no
// effect on correctness, only on power draw and memory-system contention
// inside a busy-wait, and is safe to call unconditionally on any
// architecture.
func HardwarePause() {
	cpu.Pause()
}

// PreemptionYield voluntarily yields the calling thread to the OS scheduler
// for roughly the given duration. It is the second tier of a
// spin-then-yield backoff, used when HardwarePause alone is insufficient.
// On platforms without a timed variant, and for non-positive durations, it
// degenerates to an unconditional yield to any ready task.
func PreemptionYield(d time.Duration) {
	cpu.Yield(d)
}
