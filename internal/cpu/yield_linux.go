//go:build linux

package cpu

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

// Yield deschedules the calling thread for roughly d. A non-positive d
// degenerates to a plain scheduler yield. The sleep is advisory backoff,
// not a wait on a condition; the kernel may resume the thread early or
// late.
func Yield(d time.Duration) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	ts := unix.NsecToTimespec(d.Nanoseconds())
	_ = unix.Nanosleep(&ts, nil)
}
