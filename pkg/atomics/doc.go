// Package atomics provides fixed-width atomic cells with an explicit
// memory-ordering vocabulary, plus standalone thread and signal fences.
//
// Each cell is caller-owned storage for one scalar. The package never
// allocates, copies, or frees a cell; it only reads and writes it under the
// ordering requested by the caller. A cell must be initialized exactly once
// with Init, with no concurrent access in flight, before any other
// operation is issued.
//
// Ordering arguments express the caller's minimum requirement. Go's
// sync/atomic operations are sequentially consistent, so the implementation
// may synchronize more strongly than requested, never more weakly. The
// arguments remain part of the API so call sites document the invariant
// they rely on and ports to weaker backends stay source-compatible.
package atomics
