package trace

import (
	"sync/atomic"
	"time"
)

var seqs, spanIDs atomic.Uint64

// NextSeq numbers events in emission order across all tracers.
func NextSeq() uint64 { return seqs.Add(1) }

// NextSpanID returns a fresh span id.
func NextSpanID() uint64 { return spanIDs.Add(1) }

// Span is an open operation: a registry build, one session edit, one parse.
// A Span whose scope is filtered out is inert; its methods do nothing.
type Span struct {
	t     Tracer
	begin Event
	extra map[string]string
}

func emits(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin opens a span under parent (0 for none) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !emits(t, scope) {
		return &Span{}
	}
	s := &Span{t: t, begin: Event{
		Time:     time.Now(),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   NextSpanID(),
		ParentID: parent,
		Name:     name,
	}}
	ev := s.begin
	t.Emit(&ev)
	return s
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.t == nil {
		return s
	}
	if s.extra == nil {
		s.extra = map[string]string{}
	}
	s.extra[key] = value
	return s
}

// End closes the span with detail (the parsed text, a verdict, an error)
// and reports how long it was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.t == nil {
		return 0
	}
	end := s.begin
	end.Time = time.Now()
	end.Kind = KindSpanEnd
	end.Detail = detail
	end.Extra = s.extra
	s.t.Emit(&end)
	return end.Time.Sub(s.begin.Time)
}

// ID is the span id to pass as parent to nested spans, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.begin.SpanID
}

// Point records something that happens at once, such as separators being
// captured or restored by a session.
func Point(t Tracer, scope Scope, name, detail string) {
	if !emits(t, scope) {
		return
	}
	t.Emit(&Event{Time: time.Now(), Kind: KindPoint, Scope: scope, Name: name, Detail: detail})
}
