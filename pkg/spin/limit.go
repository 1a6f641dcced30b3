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
	"runtime"
	"sync"

	cpuinfo "github.com/shirou/gopsutil/v3/cpu"
)

const (
	spinsPerCore = 16
	maxSpinLimit = 256
)

var defaultSpinLimit = sync.OnceValue(func() int {
	// Physical cores, not hyperthreads: a sibling thread spinning on the
	// same core steals cycles from the thread it is waiting for.
	cores, err := cpuinfo.Counts(false)
	if err != nil || cores <= 0 {
		cores = runtime.NumCPU()
	}
	if cores <= 1 {
		// Spinning cannot make progress on a single core; go straight to
		// the yield tier.
		return 0
	}
	limit := spinsPerCore * cores
	if limit > maxSpinLimit {
		limit = maxSpinLimit
	}
	return limit
})

// DefaultSpinLimit returns the pause-tier iteration budget used by Waiters
// that do not set their own: zero on single-core hosts, scaling with the
// physical core count elsewhere. The probe runs once per process.
func DefaultSpinLimit() int {
	return defaultSpinLimit()
}
