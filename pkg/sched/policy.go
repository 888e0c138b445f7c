package sched

import (
	"log/slog"

	"github.com/eduos/kernelcore/pkg/platform"
)

// Policy picks the next task to run out of a Runqueue. Implementations
// never mutate task State themselves beyond the shared accounting in
// finishRun; the caller transitions StateRunning/StateBlocked.
type Policy interface {
	// PickNext selects the task that should run at tick now and returns
	// it. When the pick differs from rq.Curr, the outgoing task's
	// accounting is updated (via finishRun) after selection; when rq.Curr
	// is picked again, no accounting is updated. An empty runqueue is a
	// caller error: see ErrEmptyRunqueue.
	PickNext(rq *Runqueue, now platform.Tick) (*Task, error)
}

// finishRun updates the outgoing (previously current) task's accounting
// when the policy switches away from it at tick now. Every policy shares
// this bookkeeping so runtime accrual stays consistent across dispatch
// strategies. ExecRuntime holds only the delta of the slice just finished;
// SumExecRuntime is the lifetime accumulator. Periodic tasks never accrue
// VRuntime: fairness among periodic tasks is governed by their own policy,
// not CFS's.
func finishRun(t *Task, now platform.Tick) {
	if t == nil {
		return
	}
	ran := uint64(now) - uint64(t.ExecStart)
	t.ExecRuntime = ran
	t.SumExecRuntime += ran

	if t.IsPeriodic {
		return
	}
	t.VRuntime += scaledVRuntime(ran, weightForNice(t.Nice))
}

// startRun marks t as the incoming current task at tick now.
func startRun(t *Task, now platform.Tick) {
	t.ExecStart = now
	t.State = StateRunning
}

// isPeriodicTask reports whether t should be scheduled as periodic: a
// periodic task still under WCET analysis is treated as aperiodic so it
// competes on equal footing while its execution time is profiled.
func isPeriodicTask(t *Task) bool {
	return t.IsPeriodic && !t.IsUnderAnalysis
}

// rolloverPeriodics reactivates every periodic task whose current instance
// both ran (Executed) and has reached its next release (NextPeriod <= now):
// Executed clears and Deadline/NextPeriod both advance by one Period. A task
// that never ran in its period is left alone; it stays eligible with its
// stale Deadline/NextPeriod until a policy finally picks it.
func rolloverPeriodics(tasks []*Task, now platform.Tick) {
	for _, t := range tasks {
		if !t.IsPeriodic {
			continue
		}
		if t.Executed && t.NextPeriod <= uint64(now) {
			t.Executed = false
			t.Deadline = t.NextPeriod + t.RelDeadline
			t.NextPeriod += t.Period
		}
	}
}

// pickEarliestNotExecuted returns the runnable periodic task with the
// smallest key(t) among those not yet Executed in their current period, or
// nil if none qualify. edf and rm share this scan, differing only in key.
func pickEarliestNotExecuted(rq *Runqueue, key func(*Task) uint64) *Task {
	var best *Task
	for _, t := range rq.Tasks {
		if !t.Runnable() || !isPeriodicTask(t) || t.Executed {
			continue
		}
		if best == nil || key(t) < key(best) {
			best = t
		}
	}
	return best
}

// periodicPickNext implements the shared edf/rm shape: roll periods over,
// pick the smallest-key not-yet-executed periodic task, mark it Executed,
// and fall through to round-robin(skip_periodic=false) when no periodic
// task qualifies. That fall-through considers every runnable task,
// including periodic tasks already Executed in their current period.
func periodicPickNext(rq *Runqueue, now platform.Tick, key func(*Task) uint64) (*Task, error) {
	rolloverPeriodics(rq.Tasks, now)

	best := pickEarliestNotExecuted(rq, key)
	if best == nil {
		return roundRobinPickNext(rq, now, 0, false)
	}
	best.Executed = true

	if rq.Curr == best {
		return best, nil
	}
	finishRun(rq.Curr, now)
	startRun(best, now)
	rq.Curr = best
	return best, nil
}

// scaledVRuntime converts ran ticks of wall-clock execution into
// NICE_0_WEIGHT-scaled virtual runtime: scaledRuntime = round(ran *
// NICE_0_WEIGHT / weight), using round-half-up fixed-point division so a
// nice-0 task's vruntime always advances in lockstep with its real
// runtime. The result is a whole number of ticks, so for heavy weights a
// short slice adds nothing: at nice -20 (weight 88761) any slice under 44
// ticks scales to 0.
func scaledVRuntime(ran, weight uint64) uint64 {
	if weight == 0 {
		weight = 1
	}
	return (ran*NiceZeroWeight + weight/2) / weight
}

func logDeadlineMiss(t *Task, now platform.Tick) {
	slog.Warn("task missed its deadline",
		"pid", t.PID, "name", t.Name, "deadline", t.Deadline, "now", now, "misses", t.DeadlineMisses)
}
