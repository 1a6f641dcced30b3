// Package cpu selects the platform-specific spin-wait and yield primitives
// at build time. Every target gets a safe implementation; architectures
// without a dedicated spin-wait instruction fall back to a no-op, and
// platforms without a timed yield fall back to a plain scheduler yield.
package cpu
