package sched

import (
	"errors"

	"github.com/eduos/kernelcore/pkg/kpanic"
	"github.com/eduos/kernelcore/pkg/platform"
)

// MustPickNext wraps a Policy's PickNext for drivers that guarantee the
// runqueue always carries a RUNNING idle task: under that contract,
// ErrEmptyRunqueue can only mean the guarantee itself was violated, a
// fatal invariant violation rather than a recoverable condition. Drivers
// that don't maintain an idle task (the kernelcore CLI's demo runqueues)
// should call Policy.PickNext directly and treat ErrEmptyRunqueue as
// "go idle".
func MustPickNext(p Policy, rq *Runqueue, now platform.Tick) *Task {
	t, err := p.PickNext(rq, now)
	if err != nil {
		if errors.Is(err, ErrEmptyRunqueue) {
			kpanic.Fatal("sched.PickNext", "no RUNNING task in a runqueue that must always carry an idle task")
		}
		kpanic.Fatal("sched.PickNext", err.Error())
	}
	return t
}
