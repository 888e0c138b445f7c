package platform

import "sync/atomic"

// SimClock is an in-memory monotonic tick counter: the default Clock for
// tests and for the CLI's simulated mode. Advance is meant to be called
// once per simulated timer interrupt.
type SimClock struct {
	tick atomic.Uint64
}

// NewSimClock returns a SimClock starting at tick 0.
func NewSimClock() *SimClock { return &SimClock{} }

func (c *SimClock) CurrentTick() Tick { return Tick(c.tick.Load()) }

// Advance moves the clock forward by n ticks and returns the new value.
func (c *SimClock) Advance(n uint64) Tick { return Tick(c.tick.Add(n)) }
