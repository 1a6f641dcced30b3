//go:build !linux

package cpu

import (
	"runtime"
	"time"
)

// Yield on platforms without a timed variant is timeout-agnostic: it hands
// the processor to any ready goroutine and returns.
func Yield(_ time.Duration) {
	runtime.Gosched()
}
