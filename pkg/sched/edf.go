package sched

import "github.com/eduos/kernelcore/pkg/platform"

// EDFPolicy is earliest-deadline-first over periodic tasks, with period
// rollover: the runnable, not-yet-executed-this-period task with the
// nearest absolute Deadline always runs next. When no periodic task
// qualifies, selection falls through to round-robin(skip_periodic=false)
// over the remaining runnable tasks.
type EDFPolicy struct{}

func (p *EDFPolicy) PickNext(rq *Runqueue, now platform.Tick) (*Task, error) {
	return periodicPickNext(rq, now, func(t *Task) uint64 { return t.Deadline })
}
