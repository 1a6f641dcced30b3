// Package order defines the memory-ordering vocabulary shared by every
// atomic operation in this module: the general MemoryOrder set, the
// LoadOrder and StoreOrder subsets valid for pure reads and pure writes,
// and the fail/success ordering precondition for compare-exchange.
//
// The numeric values follow the C11 memory_order enumeration, so ordering
// strength compares numerically and the compare-exchange precondition is
// the classic fail <= succ check.
package order

//go:generate stringer -type=MemoryOrder
//go:generate stringer -type=LoadOrder
//go:generate stringer -type=StoreOrder

// MemoryOrder is the general ordering set, valid on any operation that may
// both read and write (exchange, compare-exchange, fetch-and-combine) and
// on fences.
type MemoryOrder int

const (
	// Relaxed guarantees atomicity only; no synchronization or ordering
	// constraints are imposed on other reads or writes.
	Relaxed MemoryOrder = iota
	// Consume orders reads and writes that carry a data dependency on the
	// loaded value. On most platforms this constrains the compiler only.
	Consume
	// Acquire orders the load so that no subsequent read or write on the
	// calling thread moves before it; writes released by other threads on
	// the same location become visible.
	Acquire
	// Release orders the store so that no prior read or write on the
	// calling thread moves after it; prior writes become visible to
	// threads that acquire the same location.
	Release
	// AcqRel combines Acquire and Release for read-modify-write operations.
	AcqRel
	// SeqCst is AcqRel plus a single total order over all sequentially
	// consistent operations observed identically by all threads.
	SeqCst
)

// LoadOrder is the subset of orderings meaningful for a pure read.
// Release and AcqRel are not representable here.
type LoadOrder int

const (
	LoadRelaxed LoadOrder = 0
	LoadConsume LoadOrder = 1
	LoadAcquire LoadOrder = 2
	LoadSeqCst  LoadOrder = 5
)

// StoreOrder is the subset of orderings meaningful for a pure write.
// StoreConsume exists only for symmetry with the hardware model; Acquire
// and AcqRel are not representable here.
type StoreOrder int

const (
	StoreRelaxed StoreOrder = 0
	StoreConsume StoreOrder = 1
	StoreRelease StoreOrder = 3
	StoreSeqCst  StoreOrder = 5
)

// StrongestLoadOrder maps a general ordering to the strongest load-only
// ordering it implies. A read-modify-write operation whose failure branch
// degenerates to a plain load uses this to derive an ordering consistent
// with, but no stronger than, the requested one.
//
// Release maps to LoadRelaxed: a pure release carries no acquire-side
// guarantee, so its load equivalent is relaxed. This is deliberate;
// "fixing" it to LoadAcquire would silently strengthen call sites.
func (o MemoryOrder) StrongestLoadOrder() LoadOrder {
	switch o {
	case Relaxed:
		return LoadRelaxed
	case Consume:
		return LoadConsume
	case Acquire:
		return LoadAcquire
	case Release:
		return LoadRelaxed
	case AcqRel:
		return LoadAcquire
	case SeqCst:
		return LoadSeqCst
	default:
		// Unrecognized input is a defect; resolve to the strongest
		// ordering rather than fail silently weaker.
		return LoadSeqCst
	}
}

// Valid reports whether o is one of the six defined orderings.
func (o MemoryOrder) Valid() bool {
	return o >= Relaxed && o <= SeqCst
}

// Valid reports whether o is a member of the load subset.
func (o LoadOrder) Valid() bool {
	switch o {
	case LoadRelaxed, LoadConsume, LoadAcquire, LoadSeqCst:
		return true
	}
	return false
}

// Valid reports whether o is a member of the store subset.
func (o StoreOrder) Valid() bool {
	switch o {
	case StoreRelaxed, StoreConsume, StoreRelease, StoreSeqCst:
		return true
	}
	return false
}

// CheckCASOrders validates the compare-exchange precondition that the
// failure ordering must not be stronger than the success ordering. A
// violation is a programming defect, not a recoverable error: when checks
// are enabled (the default) it panics, and builds with the atomicsnochecks
// tag elide the check entirely.
func CheckCASOrders(succ MemoryOrder, fail LoadOrder) {
	if !ChecksEnabled {
		return
	}
	if MemoryOrder(fail) > succ {
		panic("order: compare-exchange failure ordering " + fail.String() +
			" is stronger than success ordering " + succ.String())
	}
}
