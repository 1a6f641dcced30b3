package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrongestLoadOrder(t *testing.T) {
	cases := []struct {
		in   MemoryOrder
		want LoadOrder
	}{
		{Relaxed, LoadRelaxed},
		{Consume, LoadConsume},
		{Acquire, LoadAcquire},
		{Release, LoadRelaxed},
		{AcqRel, LoadAcquire},
		{SeqCst, LoadSeqCst},
	}
	for _, c := range cases {
		got := c.in.StrongestLoadOrder()
		assert.Equal(t, c.want, got, "StrongestLoadOrder(%s)", c.in)
		assert.True(t, got.Valid(), "result must be a member of the load subset")
	}
}

func TestStrongestLoadOrderUnknownInput(t *testing.T) {
	// A value outside the enumeration is a defect; it must resolve to the
	// strongest ordering, never a weaker one.
	assert.Equal(t, LoadSeqCst, MemoryOrder(42).StrongestLoadOrder())
	assert.Equal(t, LoadSeqCst, MemoryOrder(-1).StrongestLoadOrder())
}

func TestValidSubsets(t *testing.T) {
	for _, o := range []MemoryOrder{Relaxed, Consume, Acquire, Release, AcqRel, SeqCst} {
		assert.True(t, o.Valid(), "%s", o)
	}
	assert.False(t, MemoryOrder(6).Valid())

	for _, o := range []LoadOrder{LoadRelaxed, LoadConsume, LoadAcquire, LoadSeqCst} {
		assert.True(t, o.Valid(), "%s", o)
	}
	// Release and AcqRel have no load-subset representation.
	assert.False(t, LoadOrder(Release).Valid())
	assert.False(t, LoadOrder(AcqRel).Valid())

	for _, o := range []StoreOrder{StoreRelaxed, StoreConsume, StoreRelease, StoreSeqCst} {
		assert.True(t, o.Valid(), "%s", o)
	}
	assert.False(t, StoreOrder(Acquire).Valid())
	assert.False(t, StoreOrder(AcqRel).Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "AcqRel", AcqRel.String())
	assert.Equal(t, "SeqCst", SeqCst.String())
	assert.Equal(t, "MemoryOrder(9)", MemoryOrder(9).String())
	assert.Equal(t, "LoadAcquire", LoadAcquire.String())
	assert.Equal(t, "LoadSeqCst", LoadSeqCst.String())
	assert.Equal(t, "LoadOrder(3)", LoadOrder(3).String())
	assert.Equal(t, "StoreRelease", StoreRelease.String())
	assert.Equal(t, "StoreOrder(2)", StoreOrder(2).String())
}

func TestCheckCASOrders(t *testing.T) {
	valid := []struct {
		succ MemoryOrder
		fail LoadOrder
	}{
		{Relaxed, LoadRelaxed},
		{Acquire, LoadAcquire},
		{Release, LoadRelaxed},
		{AcqRel, LoadAcquire},
		{SeqCst, LoadSeqCst},
		{SeqCst, LoadRelaxed},
	}
	for _, c := range valid {
		assert.NotPanics(t, func() { CheckCASOrders(c.succ, c.fail) },
			"succ=%s fail=%s", c.succ, c.fail)
	}
}

func TestCheckCASOrdersDefect(t *testing.T) {
	if !ChecksEnabled {
		t.Skip("ordering checks elided in this build")
	}
	assert.Panics(t, func() { CheckCASOrders(Relaxed, LoadAcquire) })
	assert.Panics(t, func() { CheckCASOrders(Acquire, LoadSeqCst) })
}
