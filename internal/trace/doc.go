// Package trace provides structured tracing for telinput.
//
// Tracing is how the tool logs: every interesting step (registry build,
// session edits, individual parses and validations) can be recorded as a
// span or an instant event.
//
// # Usage
//
//	telinput simulate --trace=- --trace-level=debug "+44 20 7946 0958"
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (file/stderr)
//   - RingTracer: keeps the last N events in memory
//   - ModeBoth: streams and keeps the last N events at the same time
//
// # Levels and scopes
//
// Scopes go from coarse to fine: ScopeDriver (CLI commands, registry build),
// ScopeSession (input edits), ScopeParse (single parse/validate calls).
// LevelPhase emits driver events, LevelDetail adds session events and
// LevelDebug emits everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeDriver, "registry", 0)
//	defer span.End("")
package trace
