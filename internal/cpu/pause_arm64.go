//go:build arm64

package cpu

// Pause issues the ARMv8 YIELD instruction, the spin-wait hint for SMT and
// virtualized cores.
//
//go:noescape
func Pause()
