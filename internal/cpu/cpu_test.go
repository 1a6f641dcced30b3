package cpu

import (
	"testing"
	"time"
)

func TestPause(t *testing.T) {
	// Pause is a hint with no observable effect; it must simply be safe to
	// call unconditionally on the host architecture.
	for i := 0; i < 1000; i++ {
		Pause()
	}
}

func TestYield(t *testing.T) {
	Yield(0)
	Yield(-time.Millisecond)

	start := time.Now()
	Yield(2 * time.Millisecond)
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Yield slept far too long: %v", elapsed)
	}
}
