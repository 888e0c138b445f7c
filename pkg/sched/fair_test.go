package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFair_PrefersLowerVRuntime checks the fair policy always hands the
// CPU to whichever runnable task has accrued the least virtual runtime.
func TestFair_PrefersLowerVRuntime(t *testing.T) {
	rq := NewRunqueue()
	behind, ahead := NewTask(1, "behind", 0, 0), NewTask(2, "ahead", 0, 0)
	ahead.VRuntime = 1000
	rq.Add(ahead)
	rq.Add(behind)

	pol := &FairPolicy{}
	picked, err := pol.PickNext(rq, 0)
	require.NoError(t, err)
	assert.Same(t, behind, picked)
}

// TestFair_NiceBiasesVRuntimeAccrual checks that a lower-niceness (higher
// weight) task accrues virtual runtime more slowly than a higher-niceness
// task for the same wall-clock runtime, per the CFS weight table.
func TestFair_NiceBiasesVRuntimeAccrual(t *testing.T) {
	favored := NewTask(1, "favored", 0, -10) // heavier weight
	plain := NewTask(2, "plain", 0, 0)

	favored.ExecStart, plain.ExecStart = 0, 0
	finishRun(favored, 10)
	finishRun(plain, 10)

	assert.Less(t, favored.VRuntime, plain.VRuntime, "a heavier-weighted task must accrue vruntime more slowly")
}

// TestFair_SwitchesWhenOvertaken checks the incumbent is displaced once a
// rival's vruntime (updated on the switch-away accounting) falls behind.
func TestFair_SwitchesWhenOvertaken(t *testing.T) {
	rq := NewRunqueue()
	a, b := NewTask(1, "a", 0, 0), NewTask(2, "b", 0, 0)
	rq.Add(a)
	rq.Add(b)

	pol := &FairPolicy{}
	picked, err := pol.PickNext(rq, 0)
	require.NoError(t, err)
	require.Same(t, a, picked)

	b.VRuntime = 0
	a.VRuntime = 50
	picked, err = pol.PickNext(rq, 20)
	require.NoError(t, err)
	assert.Same(t, b, picked)
}

func TestFair_EmptyRunqueue(t *testing.T) {
	pol := &FairPolicy{}
	_, err := pol.PickNext(NewRunqueue(), 0)
	assert.ErrorIs(t, err, ErrEmptyRunqueue)
}
