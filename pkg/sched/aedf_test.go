package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAEDF_UnderAnalysisTaskIsScheduledAsAperiodic checks that a task with
// no established WCET (IsUnderAnalysis, WorstCaseExecution == 0) is treated
// as aperiodic rather than as an aedf candidate: its estimate isn't
// trusted yet, so it never trips the deadline-miss counter and is handed
// the CPU through the round-robin fall-through instead.
func TestAEDF_UnderAnalysisTaskIsScheduledAsAperiodic(t *testing.T) {
	rq := NewRunqueue()
	task := NewPeriodicTask(1, "profiling", 10, 10, 0, 0)
	require.True(t, task.IsUnderAnalysis)
	rq.Add(task)

	pol := &AEDFPolicy{LogMisses: true}
	picked, err := pol.PickNext(rq, 25)
	require.NoError(t, err)

	assert.Same(t, task, picked)
	assert.Equal(t, uint64(0), task.DeadlineMisses)
}

// TestAEDF_MissedDeadlineStillScheduled checks that a periodic task whose
// Deadline has already passed is still selected, with the miss only
// counted, not treated as a scheduling failure.
func TestAEDF_MissedDeadlineStillScheduled(t *testing.T) {
	rq := NewRunqueue()
	task := NewPeriodicTask(1, "late", 20, 10, 2, 0)
	rq.Add(task)

	pol := &AEDFPolicy{}
	picked, err := pol.PickNext(rq, 15)
	require.NoError(t, err)

	assert.Same(t, task, picked)
	assert.Equal(t, uint64(1), task.DeadlineMisses)
}

func TestAEDF_PicksEarliestDeadline(t *testing.T) {
	rq := NewRunqueue()
	urgent := NewPeriodicTask(1, "urgent", 20, 5, 2, 0)
	relaxed := NewPeriodicTask(2, "relaxed", 20, 15, 2, 0)
	rq.Add(relaxed)
	rq.Add(urgent)

	pol := &AEDFPolicy{}
	picked, err := pol.PickNext(rq, 0)
	require.NoError(t, err)
	assert.Same(t, urgent, picked)
}
