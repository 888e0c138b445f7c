package sched

import "github.com/eduos/kernelcore/pkg/platform"

// RoundRobinPolicy cycles runnable tasks in runqueue order, preempting the
// current task once it has run for Quantum ticks.
type RoundRobinPolicy struct {
	Quantum uint64
}

func (p *RoundRobinPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	return roundRobinPickNext(rq, now, p.Quantum, false)
}

// roundRobinPickNext is the round-robin dispatch shared by RoundRobinPolicy
// and by aedf/edf/rm's fall-through when their periodic scan finds nothing
// to run: starting after rq.Curr, it returns the first eligible task,
// wrapping around; if only rq.Curr itself still qualifies, it stays current.
// skipPeriodic excludes periodic tasks (per isPeriodicTask) from eligibility;
// the policy fall-through always calls this with skipPeriodic=false, so
// there every runnable task is eligible, including periodic tasks that
// edf/rm's own scan passed over because they already ran this period.
// quantum gates preemption of the incumbent; pass 0 for unconditional
// rotation on every call.
func roundRobinPickNext(rq *Runqueue, now platform.Tick, quantum uint64, skipPeriodic bool) (*Task, error) {
	eligible := func(t *Task) bool {
		return t.Runnable() && !(skipPeriodic && isPeriodicTask(t))
	}

	any := false
	for _, t := range rq.Tasks {
		if eligible(t) {
			any = true
			break
		}
	}
	if !any {
		return nil, ErrEmptyRunqueue
	}

	if rq.Curr != nil && eligible(rq.Curr) && uint64(now)-uint64(rq.Curr.ExecStart) < quantum {
		return rq.Curr, nil
	}

	next := nextInRotation(rq, eligible)
	if next == nil {
		return nil, ErrEmptyRunqueue
	}
	finishRun(rq.Curr, now)
	startRun(next, now)
	rq.Curr = next
	return next, nil
}

// nextInRotation returns the eligible task immediately after rq.Curr in
// rq.Tasks order, wrapping around; if Curr is nil, not found, or no longer
// eligible, it falls back to the first eligible task in rq.Tasks order.
func nextInRotation(rq *Runqueue, eligible func(*Task) bool) *Task {
	n := len(rq.Tasks)
	if n == 0 {
		return nil
	}
	start := -1
	if rq.Curr != nil {
		for i, t := range rq.Tasks {
			if t == rq.Curr {
				start = i
				break
			}
		}
	}
	for i := 1; i <= n; i++ {
		cand := rq.Tasks[(start+i+n)%n]
		if eligible(cand) {
			return cand
		}
	}
	return nil
}
