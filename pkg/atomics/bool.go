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

// Bool is an atomic boolean cell. It carries the non-arithmetic operation
// set; the fetch-and-combine operators apply the logical AND/OR/XOR of the
// two truth values. Like Cell, the zero value is equivalent to Init(false),
// and a Bool must not be copied once in use.
type Bool struct {
	_ noCopy
	v atomic.Uint32
}

func b32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// Init sets the initial value. It must be the first operation on the cell
// and is not safe against concurrent access.
func (b *Bool) Init(v bool) {
	b.v.Store(b32(v))
}

// Load returns the value visible under the given ordering.
func (b *Bool) Load(o order.LoadOrder) bool {
	return b.v.Load() != 0
}

// Store writes v, visible to other threads per the given ordering.
func (b *Bool) Store(v bool, o order.StoreOrder) {
	b.v.Store(b32(v))
}

// Exchange atomically swaps in v and returns the prior value.
func (b *Bool) Exchange(v bool, o order.MemoryOrder) bool {
	return b.v.Swap(b32(v)) != 0
}

// CompareExchangeStrong atomically replaces the value with desired if it
// currently equals *expected, returning true; otherwise it writes the
// actual value back into *expected and returns false. It never fails
// spuriously.
func (b *Bool) CompareExchangeStrong(expected *bool, desired bool, succ order.MemoryOrder, fail order.LoadOrder) bool {
	order.CheckCASOrders(succ, fail)
	want, repl := b32(*expected), b32(desired)
	for {
		cur := b.v.Load()
		if cur != want {
			*expected = cur != 0
			return false
		}
		if b.v.CompareAndSwap(want, repl) {
			return true
		}
	}
}

// CompareExchangeWeak is CompareExchangeStrong except that it may
// spuriously report failure under contention; callers must retry in a loop.
func (b *Bool) CompareExchangeWeak(expected *bool, desired bool, succ order.MemoryOrder, fail order.LoadOrder) bool {
	order.CheckCASOrders(succ, fail)
	if b.v.CompareAndSwap(b32(*expected), b32(desired)) {
		return true
	}
	*expected = b.v.Load() != 0
	return false
}

// FetchAnd atomically applies logical AND with v and returns the
// pre-operation value.
func (b *Bool) FetchAnd(v bool, o order.MemoryOrder) bool {
	m := b32(v)
	for {
		cur := b.v.Load()
		if b.v.CompareAndSwap(cur, cur&m) {
			return cur != 0
		}
	}
}

// FetchOr atomically applies logical OR with v and returns the
// pre-operation value.
func (b *Bool) FetchOr(v bool, o order.MemoryOrder) bool {
	m := b32(v)
	for {
		cur := b.v.Load()
		if b.v.CompareAndSwap(cur, cur|m) {
			return cur != 0
		}
	}
}

// FetchXor atomically applies logical XOR with v and returns the
// pre-operation value.
func (b *Bool) FetchXor(v bool, o order.MemoryOrder) bool {
	m := b32(v)
	for {
		cur := b.v.Load()
		if b.v.CompareAndSwap(cur, cur^m) {
			return cur != 0
		}
	}
}
