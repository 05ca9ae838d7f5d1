package testkit

import (
	"sync"
	"testing"
)

// seams guards package-level variables (client constructors, clocks) that
// tests replace with fakes; every test in the binary shares them
var seams sync.Mutex

// Swap points *seam at fake until t and its subtests finish
func Swap[T any](t testing.TB, seam *T, fake T) {
	t.Helper()
	if seam == nil {
		t.Fatalf("testkit.Swap: nil seam")
	}
	prev := *seam
	*seam = fake
	t.Cleanup(func() { *seam = prev })
}

// Serial blocks until no other Serial test holds the seam lock, then keeps it until t finishes
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

// SerialSwap takes the seam lock and swaps; the seam is restored before the lock is released
func SerialSwap[T any](t testing.TB, seam *T, fake T) {
	t.Helper()
	Serial(t)
	Swap(t, seam, fake)
}
