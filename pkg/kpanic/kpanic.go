// Package kpanic implements the error-handling escalation policy for the
// two failure classes that are not ordinary, recoverable "return an error"
// conditions:
//
//   - Invariant violation / corruption (pageframe): log a critical
//     diagnostic and abort the operation without mutating further state.
//     A strict build may escalate to panic; the default build logs and
//     returns.
//   - Scheduler failure: a policy finding no runnable task where the
//     caller guarantees one must always exist is a fatal invariant
//     violation and always panics.
package kpanic

import "log/slog"

// Handler reacts to a corruption-class diagnostic. The default logs via
// slog and returns. cmd/kernelcore's --strict flag swaps this for Panic to
// escalate corruption to an immediate crash instead.
var Handler = LogAndReturn

// LogAndReturn logs op/reason at error level and returns, letting the
// caller's ordinary error return carry the failure onward.
func LogAndReturn(op, reason string) {
	slog.Error("kernel invariant violation", "op", op, "reason", reason)
}

// Panic logs then panics, for builds that want corruption to halt the
// process immediately rather than merely report it.
func Panic(op, reason string) {
	slog.Error("kernel invariant violation", "op", op, "reason", reason)
	panic(op + ": " + reason)
}

// Corrupt reports a corruption-class diagnostic through the active Handler.
func Corrupt(op, reason string) {
	Handler(op, reason)
}

// Fatal reports an unconditionally fatal invariant violation (e.g. a
// policy finding no runnable task in a runqueue the caller guarantees
// always carries one) regardless of the installed Handler.
func Fatal(op, reason string) {
	slog.Error("fatal kernel invariant violation", "op", op, "reason", reason)
	panic(op + ": " + reason)
}
