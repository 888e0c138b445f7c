package sched

import "github.com/eduos/kernelcore/pkg/platform"

// State is a task's coarse lifecycle stage.
type State int

const (
	StateNew State = iota
	StateRunning
	StateBlocked
	StateStopped
	StateZombie
)

// String renders the state as a lowercase label suitable for logs and
// table output.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateBlocked:
		return "blocked"
	case StateStopped:
		return "stopped"
	case StateZombie:
		return "zombie"
	default:
		return "unknown"
	}
}

// Task is one schedulable entity. Every policy reads and writes a common
// accounting subset; the periodic fields are only meaningful when
// IsPeriodic is set (aedf/edf/rm).
type Task struct {
	PID   int
	Name  string
	State State

	// Priority is the static priority used by the priority policy: lower
	// value runs first. Unused by the other policies.
	Priority int

	// Nice is the CFS niceness in [-20, 19]; NICE_0_WEIGHT scales
	// ExecRuntime into VRuntime through the weight table (weight.go).
	Nice int

	// --- aperiodic accounting (round-robin, priority, fair) ---

	ExecStart      platform.Tick
	ExecRuntime    uint64 // ticks of the most recently finished run (set on switch-away)
	SumExecRuntime uint64 // ticks accrued over the task's lifetime
	VRuntime       uint64 // fair-share virtual runtime in whole ticks, each slice scaled by NICE_0_WEIGHT/weight (scaledVRuntime)

	// --- periodic accounting (aedf, edf, rm) ---

	IsPeriodic         bool
	IsUnderAnalysis    bool   // aedf: still profiling worst-case execution time
	Period             uint64
	RelDeadline        uint64 // deadline offset from each period's release
	Deadline           uint64 // absolute tick of the current instance's deadline
	NextPeriod         uint64 // absolute tick the next instance releases at
	WorstCaseExecution uint64
	Executed           bool   // one-shot flag: set once the task has run its current period's instance
	DeadlineMisses     uint64 // count of aedf picks that landed after Deadline had already passed
}

// NewTask constructs an aperiodic task in state New with zero accounting.
func NewTask(pid int, name string, priority, nice int) *Task {
	return &Task{
		PID:      pid,
		Name:     name,
		State:    StateNew,
		Priority: priority,
		Nice:     nice,
	}
}

// NewPeriodicTask constructs a periodic task released at firstRelease with
// the given period and relative deadline (deadline == period yields an
// implicit-deadline task).
func NewPeriodicTask(pid int, name string, period, deadline, wcet, firstRelease uint64) *Task {
	return &Task{
		PID:                pid,
		Name:               name,
		State:              StateNew,
		IsPeriodic:         true,
		IsUnderAnalysis:    wcet == 0,
		Period:             period,
		RelDeadline:        deadline,
		Deadline:           firstRelease + deadline,
		NextPeriod:         firstRelease + period,
		WorstCaseExecution: wcet,
	}
}

// Runnable reports whether the task is eligible for PickNext selection. A
// task becomes RUNNING on its first enqueue (Runqueue.Add), so only that
// state is eligible; new-but-not-yet-queued, blocked, stopped, and zombied
// tasks are not.
func (t *Task) Runnable() bool {
	return t.State == StateRunning
}
