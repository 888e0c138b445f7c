package sched

import "github.com/eduos/kernelcore/pkg/platform"

// StaticPriorityPolicy always runs the runnable task with the lowest
// Priority value, ties broken by earliest position in the runqueue
// (stable: a later-arriving task never preempts an equal-priority
// incumbent).
type StaticPriorityPolicy struct{}

func (p *StaticPriorityPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	runnable := rq.Runnable()
	if len(runnable) == 0 {
		return nil, ErrEmptyRunqueue
	}

	best := runnable[0]
	for _, t := range runnable[1:] {
		if t.Priority < best.Priority {
			best = t
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
