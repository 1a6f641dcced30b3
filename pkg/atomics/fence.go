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

package atomics

import (
	"sync/atomic"

	"github.com/srediag/go-atomics/pkg/order"
)

// fenceWord is the private location all fences synchronize through, padded
// to its own cache line so fence traffic does not false-share with callers.
var fenceWord struct {
	_ [64]byte
	v atomic.Int64
	_ [56]byte
}

// ThreadFence establishes a standalone ordering constraint not tied to a
// specific atomic cell, ordering non-atomic and multi-cell accesses around
// a synchronization point. Relaxed is a no-op; every stronger ordering
// issues a full barrier on the calling thread, which satisfies any
// requested strength.
func ThreadFence(o order.MemoryOrder) {
	if o == order.Relaxed {
		return
	}
	fenceWord.v.Add(0)
}

// SignalFence has the ordering semantics of ThreadFence but only with
// respect to reentrant in-process handlers on the same execution context;
// it is a compiler-ordering barrier, not a hardware one. Go cannot express
// a pure compiler barrier, so the closest portable equivalent is an atomic
// load, which carries no lock-prefixed instruction.
func SignalFence(o order.MemoryOrder) {
	if o == order.Relaxed {
		return
	}
	fenceWord.v.Load()
}
