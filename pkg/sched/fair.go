package sched

import "github.com/eduos/kernelcore/pkg/platform"

// FairPolicy is a CFS-like scheduler: it always runs the runnable task
// with the smallest VRuntime, so niceness-weighted runtime stays balanced
// across the runqueue over time.
type FairPolicy struct{}

func (p *FairPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	runnable := rq.Runnable()
	if len(runnable) == 0 {
		return nil, ErrEmptyRunqueue
	}

	best := runnable[0]
	for _, t := range runnable[1:] {
		if t.VRuntime < best.VRuntime {
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
