// Package irq models scoped interrupt masking: a guarded operation runs
// with interrupts disabled on entry and restores the prior interrupt state
// on exit, including on error exits. pkg/pageframe guards its public
// Instance operations with it; pkg/sched does not use it, and Runqueue and
// Policy calls run unguarded.
// In a single-CPU, single-thread-of-control model (process context or
// interrupt context, never both at once) a mutex is the faithful userspace
// stand-in — it guarantees the same "at most one logical thread of control
// in kernel context" property irq_save/irq_restore give a real kernel, and
// defer gives the same guaranteed-release-on-every-exit-path discipline.
package irq

import "sync"

// Guard is a critical section entered with Save and left with Restore.
// The zero value is ready to use.
type Guard struct {
	mu sync.Mutex
}

// State is returned by Save and consumed by Restore. It carries no data of
// its own (Guard is not reentrant); its only purpose is to make the
// save/restore pairing explicit at call sites, mirroring irq_save()'s
// return value in the source kernel.
type State struct{}

// Save disables "interrupts" (acquires the critical section) and returns a
// State to pass to Restore.
func (g *Guard) Save() State {
	g.mu.Lock()
	return State{}
}

// Restore re-enables "interrupts" (releases the critical section).
func (g *Guard) Restore(State) {
	g.mu.Unlock()
}

// Critical runs f with the guard held, restoring on every exit path
// (including a panic unwinding through f) via defer.
func (g *Guard) Critical(f func()) {
	st := g.Save()
	defer g.Restore(st)
	f()
}
