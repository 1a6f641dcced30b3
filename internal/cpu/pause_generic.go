//go:build !amd64 && !arm64

package cpu

// Pause is a no-op on architectures without a dedicated spin-wait hint.
// The processor spins at full speed; correctness is unaffected.
func Pause() {}
