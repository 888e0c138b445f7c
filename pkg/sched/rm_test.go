package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRateMonotonic_ShorterPeriodWins checks fixed priority assignment by
// period: the task with the smallest NextPeriod (here equal to Period,
// since both release at tick 0) always wins, regardless of deadline or
// arrival order.
func TestRateMonotonic_ShorterPeriodWins(t *testing.T) {
	rq := NewRunqueue()
	slow := NewPeriodicTask(1, "slow", 100, 100, 5, 0)
	fast := NewPeriodicTask(2, "fast", 10, 10, 1, 0)
	rq.Add(slow)
	rq.Add(fast)

	pol := &RateMonotonicPolicy{}
	picked, err := pol.PickNext(rq, 0)
	require.NoError(t, err)
	assert.Same(t, fast, picked)
}

// TestRateMonotonic_FallsThroughToRoundRobin checks that with no periodic
// candidate, selection falls through to round-robin instead of reporting
// an empty runqueue.
func TestRateMonotonic_FallsThroughToRoundRobin(t *testing.T) {
	rq := NewRunqueue()
	aperiodic := NewTask(1, "a", 0, 0)
	rq.Add(aperiodic)

	pol := &RateMonotonicPolicy{}
	picked, err := pol.PickNext(rq, 0)
	require.NoError(t, err)
	assert.Same(t, aperiodic, picked)
}
