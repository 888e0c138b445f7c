// Package sched implements the pluggable process scheduler core: a task
// descriptor, a runqueue, and a Policy interface with six concrete
// dispatch strategies (round-robin, static priority, CFS-like fair share,
// earliest absolute deadline without period rollover (aedf), EDF with
// period rollover (edf), and rate-monotonic).
//
// A Policy only decides which Task in a Runqueue runs next; it never
// touches the clock, blocks, or performs I/O. The caller (a simulator or
// a real dispatch loop) is responsible for advancing time and moving
// tasks between run/block/ready states.
package sched
