package sched

import "github.com/eduos/kernelcore/pkg/platform"

// AEDFPolicy is plain earliest-deadline-first with no period rollover: among
// periodic tasks not currently under WCET analysis (isPeriodicTask), the
// one with the smallest Deadline always runs next. A task still under
// analysis is scheduled as if aperiodic, since its WCET estimate isn't
// trusted yet, so it falls to the round-robin tail instead of competing
// here. A periodic task whose Deadline has already passed is still
// scheduled, but the miss is counted (and logged, if LogMisses) rather than
// treated as a scheduling failure. When no periodic task qualifies,
// selection falls through to round-robin(skip_periodic=false) over the
// remaining runnable tasks.
type AEDFPolicy struct {
	// LogMisses controls whether a missed deadline is also reported
	// through slog rather than just counted.
	LogMisses bool
}

func (p *AEDFPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	best := earliestDeadlineAmongPeriodic(rq)
	if best == nil {
		return roundRobinPickNext(rq, now, 0, false)
	}

	if best.Deadline < uint64(now) {
		best.DeadlineMisses++
		if p.LogMisses {
			logDeadlineMiss(best, now)
		}
	}

	if rq.Curr == best {
		return best, nil
	}
	finishRun(rq.Curr, now)
	startRun(best, now)
	rq.Curr = best
	return best, nil
}

// earliestDeadlineAmongPeriodic returns the runnable periodic (and not
// under-analysis) task with the smallest Deadline, or nil if none qualify.
// Unlike edf/rm, it does not exclude tasks already Executed this period:
// aedf has no rollover step of its own to clear that flag.
func earliestDeadlineAmongPeriodic(rq *Runqueue) *Task {
	var best *Task
	for _, t := range rq.Tasks {
		if !t.Runnable() || !isPeriodicTask(t) {
			continue
		}
		if best == nil || t.Deadline < best.Deadline {
			best = t
		}
	}
	return best
}
