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
	"unsafe"

	"github.com/srediag/go-atomics/pkg/order"
)

// Integer constrains the scalar types a Cell can hold: signed and unsigned
// integers of width 8, 16, 32 or 64 bits, plus the word-sized defaults.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Cell is an atomic variable holding one value of type T. The zero Cell is
// equivalent to one initialized to zero; any other starting value requires
// Init before concurrent use. Cells must not be copied once in use (go vet
// reports violations).
//
// All widths share a single 64-bit backing word. Values are stored masked
// to T's width, so arithmetic wraps at the width of T and compare-exchange
// compares canonical representations.
type Cell[T Integer] struct {
	_ noCopy
	v atomic.Uint64
}

// Named instantiations for every supported width and signedness. Int and
// Uint are the word-sized defaults.
type (
	Int    = Cell[int]
	Int8   = Cell[int8]
	Int16  = Cell[int16]
	Int32  = Cell[int32]
	Int64  = Cell[int64]
	Uint   = Cell[uint]
	Uint8  = Cell[uint8]
	Uint16 = Cell[uint16]
	Uint32 = Cell[uint32]
	Uint64 = Cell[uint64]
)

// mask returns the canonical-representation mask for T's width.
func (c *Cell[T]) mask() uint64 {
	bits := 8 * unsafe.Sizeof(*new(T))
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

// pack converts v to its canonical stored representation. The uint64
// conversion sign-extends signed values; masking truncates to T's width.
func (c *Cell[T]) pack(v T) uint64 {
	return uint64(v) & c.mask()
}

// unpack is the inverse of pack. The truncating conversion reinterprets the
// low bits as T, which restores the sign for signed types.
func (c *Cell[T]) unpack(b uint64) T {
	return T(b)
}

// Init sets the cell's initial value. It must be the first operation on the
// cell and is not itself atomic with respect to concurrent access; the
// caller must ensure no concurrent readers or writers exist yet.
func (c *Cell[T]) Init(v T) {
	c.v.Store(c.pack(v))
}

// Load returns the value visible under the given ordering. It never blocks.
func (c *Cell[T]) Load(o order.LoadOrder) T {
	return c.unpack(c.v.Load())
}

// Store writes v, visible to other threads per the given ordering. It never
// blocks.
func (c *Cell[T]) Store(v T, o order.StoreOrder) {
	c.v.Store(c.pack(v))
}

// Exchange atomically swaps in v and returns the prior value.
func (c *Cell[T]) Exchange(v T, o order.MemoryOrder) T {
	return c.unpack(c.v.Swap(c.pack(v)))
}

// CompareExchangeStrong atomically replaces the cell's value with desired
// if it currently equals *expected, returning true. Otherwise it writes the
// actual current value back into *expected and returns false. The strong
// form never fails spuriously.
//
// Precondition: fail must not be stronger than succ; see
// order.CheckCASOrders.
func (c *Cell[T]) CompareExchangeStrong(expected *T, desired T, succ order.MemoryOrder, fail order.LoadOrder) bool {
	order.CheckCASOrders(succ, fail)
	want, repl := c.pack(*expected), c.pack(desired)
	for {
		cur := c.v.Load()
		if cur != want {
			*expected = c.unpack(cur)
			return false
		}
		if c.v.CompareAndSwap(want, repl) {
			return true
		}
		// Lost a race after observing a match; re-observe and decide again.
	}
}

// CompareExchangeWeak is CompareExchangeStrong except that it may spuriously
// report failure even when the current value equals *expected, for example
// when it loses a race with a concurrent writer that restores the value.
// Callers using it inside a compare-and-retry algorithm must retry in a
// loop.
func (c *Cell[T]) CompareExchangeWeak(expected *T, desired T, succ order.MemoryOrder, fail order.LoadOrder) bool {
	order.CheckCASOrders(succ, fail)
	if c.v.CompareAndSwap(c.pack(*expected), c.pack(desired)) {
		return true
	}
	*expected = c.unpack(c.v.Load())
	return false
}

// FetchAnd atomically applies bitwise AND with v and returns the
// pre-operation value.
func (c *Cell[T]) FetchAnd(v T, o order.MemoryOrder) T {
	m := c.pack(v)
	for {
		cur := c.v.Load()
		if c.v.CompareAndSwap(cur, cur&m) {
			return c.unpack(cur)
		}
	}
}

// FetchOr atomically applies bitwise OR with v and returns the
// pre-operation value.
func (c *Cell[T]) FetchOr(v T, o order.MemoryOrder) T {
	m := c.pack(v)
	for {
		cur := c.v.Load()
		if c.v.CompareAndSwap(cur, cur|m) {
			return c.unpack(cur)
		}
	}
}

// FetchXor atomically applies bitwise XOR with v and returns the
// pre-operation value.
func (c *Cell[T]) FetchXor(v T, o order.MemoryOrder) T {
	m := c.pack(v)
	for {
		cur := c.v.Load()
		if c.v.CompareAndSwap(cur, cur^m) {
			return c.unpack(cur)
		}
	}
}

// FetchAdd atomically adds v and returns the pre-operation value. Overflow
// wraps at T's width (two's complement), with no saturation or signaling.
func (c *Cell[T]) FetchAdd(v T, o order.MemoryOrder) T {
	m, mask := c.pack(v), c.mask()
	for {
		cur := c.v.Load()
		if c.v.CompareAndSwap(cur, (cur+m)&mask) {
			return c.unpack(cur)
		}
	}
}

// FetchSub atomically subtracts v and returns the pre-operation value.
// Overflow wraps at T's width (two's complement).
func (c *Cell[T]) FetchSub(v T, o order.MemoryOrder) T {
	m, mask := c.pack(v), c.mask()
	for {
		cur := c.v.Load()
		if c.v.CompareAndSwap(cur, (cur-m)&mask) {
			return c.unpack(cur)
		}
	}
}
