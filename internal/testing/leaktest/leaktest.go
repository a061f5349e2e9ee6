// Package leaktest fails tests that leave goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultWait is how long Check gives goroutines to exit.
const DefaultWait = time.Second

// Checker compares the goroutine count against a baseline.
type Checker struct {
	t      testing.TB
	before int
	wait   time.Duration
}

// New records the current goroutine count.
func New(t testing.TB) *Checker {
	t.Helper()
	runtime.Gosched()
	return &Checker{t: t, before: runtime.NumGoroutine(), wait: DefaultWait}
}

// Check fails the test when more than tolerance goroutines outlive the
// baseline once the wait has passed.
func (c *Checker) Check(tolerance int) {
	c.t.Helper()
	after := settle(c.before+tolerance, c.wait)
	if leaked := after - c.before; leaked > tolerance {
		c.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			c.before, after, leaked, tolerance)
	}
}

// Verify checks for leaks when the test finishes. Call it before anything
// else registers a cleanup so it runs last.
func Verify(t testing.TB) {
	t.Helper()
	c := New(t)
	t.Cleanup(func() { c.Check(0) })
}

// settle polls until the count drops to target or the wait runs out, and
// returns the last count seen.
func settle(target int, wait time.Duration) int {
	deadline := time.Now().Add(wait)
	for {
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
	}
}
