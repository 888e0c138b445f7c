package sched

import "errors"

var (
	// ErrEmptyRunqueue is returned by PickNext when the runqueue holds no
	// runnable task. Callers of a policy directly may treat this as "go
	// idle"; MustPickNext escalates it to a panic for drivers that
	// guarantee an always-runnable idle task.
	ErrEmptyRunqueue = errors.New("sched: no runnable task in runqueue")

	// ErrNotPeriodic describes a task that never declared a period. No
	// policy in this package returns it: aedf, edf and rm fall through to
	// round-robin when no periodic task qualifies.
	ErrNotPeriodic = errors.New("sched: task is not periodic")

	// ErrDeadlineMiss describes an aedf pick made after the task's
	// Deadline. No policy returns it: aedf counts the miss in
	// Task.DeadlineMisses and logs it when LogMisses is set.
	ErrDeadlineMiss = errors.New("sched: task missed its deadline")
)
