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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srediag/go-atomics/pkg/order"
)

func TestBoolInitLoadStore(t *testing.T) {
	var b Bool
	b.Init(true)
	assert.True(t, b.Load(order.LoadRelaxed))

	b.Store(false, order.StoreRelease)
	assert.False(t, b.Load(order.LoadAcquire))

	b.Init(false)
	assert.False(t, b.Load(order.LoadSeqCst))
}

func TestBoolExchange(t *testing.T) {
	var b Bool
	b.Init(false)
	assert.False(t, b.Exchange(true, order.SeqCst))
	assert.True(t, b.Exchange(true, order.AcqRel))
	assert.True(t, b.Load(order.LoadRelaxed))
}

func TestBoolCompareExchange(t *testing.T) {
	var b Bool
	b.Init(false)

	expected := false
	assert.True(t, b.CompareExchangeStrong(&expected, true, order.AcqRel, order.LoadAcquire))
	assert.True(t, b.Load(order.LoadRelaxed))

	expected = false
	assert.False(t, b.CompareExchangeStrong(&expected, true, order.SeqCst, order.LoadSeqCst))
	assert.True(t, expected, "actual value written back on failure")

	for {
		expected = true
		if b.CompareExchangeWeak(&expected, false, order.Release, order.LoadRelaxed) {
			break
		}
	}
	assert.False(t, b.Load(order.LoadRelaxed))
}

func TestBoolFetchLogical(t *testing.T) {
	var b Bool
	b.Init(true)
	assert.True(t, b.FetchAnd(false, order.SeqCst))
	assert.False(t, b.Load(order.LoadRelaxed))

	assert.False(t, b.FetchOr(true, order.SeqCst))
	assert.True(t, b.Load(order.LoadRelaxed))

	assert.True(t, b.FetchXor(true, order.SeqCst))
	assert.False(t, b.Load(order.LoadRelaxed))

	assert.False(t, b.FetchXor(false, order.Relaxed))
	assert.False(t, b.Load(order.LoadRelaxed))
}
