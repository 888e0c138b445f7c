package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduos/kernelcore/pkg/platform"
)

// TestRoundRobin_RotatesOnQuantumExpiry checks that three tasks rotate in
// order once each has run for a full quantum, and a task still
// mid-quantum is not preempted.
func TestRoundRobin_RotatesOnQuantumExpiry(t *testing.T) {
	rq := NewRunqueue()
	a, b, c := NewTask(1, "a", 0, 0), NewTask(2, "b", 0, 0), NewTask(3, "c", 0, 0)
	rq.Add(a)
	rq.Add(b)
	rq.Add(c)

	pol := &RoundRobinPolicy{Quantum: 4}
	clock := platform.NewSimClock()

	picked, err := pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, a, picked)

	clock.Advance(2)
	picked, err = pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, a, picked, "mid-quantum task must not be preempted")

	clock.Advance(3)
	picked, err = pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, b, picked)

	clock.Advance(4)
	picked, err = pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, c, picked)

	clock.Advance(4)
	picked, err = pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, a, picked, "rotation must wrap back to the first task")
}

func TestRoundRobin_EmptyRunqueue(t *testing.T) {
	pol := &RoundRobinPolicy{Quantum: 1}
	_, err := pol.PickNext(NewRunqueue(), 0)
	assert.ErrorIs(t, err, ErrEmptyRunqueue)
}

func TestRoundRobin_SkipsBlockedTasks(t *testing.T) {
	rq := NewRunqueue()
	a, b := NewTask(1, "a", 0, 0), NewTask(2, "b", 0, 0)
	b.State = StateBlocked
	rq.Add(a)
	rq.Add(b)

	pol := &RoundRobinPolicy{Quantum: 1}
	clock := platform.NewSimClock()

	_, err := pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)

	clock.Advance(2)
	picked, err := pol.PickNext(rq, clock.CurrentTick())
	require.NoError(t, err)
	assert.Same(t, a, picked, "blocked task must be skipped, leaving only a runnable")
}
