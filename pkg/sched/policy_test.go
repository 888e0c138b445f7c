package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledVRuntime_NiceZeroIsIdentity(t *testing.T) {
	assert.Equal(t, uint64(100), scaledVRuntime(100, NiceZeroWeight))
}

func TestScaledVRuntime_RoundsHalfUp(t *testing.T) {
	// ran=1, weight=3: 1024/3 = 341.33, which rounds down to 341.
	got := scaledVRuntime(1, 3)
	assert.Equal(t, (uint64(1)*NiceZeroWeight+1)/3, got)
	// ran=2, weight=3: 2048/3 = 682.67, which rounds up to 683 (truncation would give 682).
	assert.Equal(t, uint64(683), scaledVRuntime(2, 3))
}

func TestFinishRun_NilTaskIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { finishRun(nil, 10) })
}

func TestFinishRun_AccumulatesRuntime(t *testing.T) {
	task := NewTask(1, "t", 0, 0)
	task.ExecStart = 5
	finishRun(task, 15)

	assert.Equal(t, uint64(10), task.ExecRuntime)
	assert.Equal(t, uint64(10), task.SumExecRuntime)
	assert.Equal(t, uint64(10), task.VRuntime)
}

func TestStartRun_SetsStateAndExecStart(t *testing.T) {
	task := NewTask(1, "t", 0, 0)
	startRun(task, 42)

	assert.Equal(t, StateRunning, task.State)
	assert.EqualValues(t, 42, task.ExecStart)
}
