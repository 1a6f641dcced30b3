//go:build amd64

package cpu

// Pause issues the x86 PAUSE instruction. It hints to the processor that
// the calling thread is in a spin-wait loop, reducing power draw and
// avoiding the memory-order-violation penalty on loop exit.
//
//go:noescape
func Pause()
