package sched

import "github.com/eduos/kernelcore/pkg/platform"

// RateMonotonicPolicy is identical to EDFPolicy except it keys selection on
// NextPeriod instead of Deadline: since periods never change at runtime,
// ordering by next release is equivalent to a fixed priority assigned once
// per task from its Period, shortest period first. It shares edf's period
// rollover and not-yet-executed-this-period filtering, and the same
// round-robin(skip_periodic=false) fall-through when no periodic task
// qualifies.
type RateMonotonicPolicy struct{}

func (p *RateMonotonicPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	return periodicPickNext(rq, now, func(t *Task) uint64 { return t.NextPeriod })
}
