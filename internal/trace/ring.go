package trace

import (
	"io"
	"sync"
)

const defaultRingSize = 1024

// RingTracer remembers the most recent events of a run. The CLI dumps it
// when the command returns, so a failed validation can be inspected
// without streaming every keystroke.
type RingTracer struct {
	mu     sync.Mutex
	level  Level
	events []Event // grows up to size, then overwritten at next
	size   int
	next   int
}

// NewRingTracer keeps up to size events, 1024 if size is not positive.
func NewRingTracer(size int, level Level) *RingTracer {
	if size <= 0 {
		size = defaultRingSize
	}
	return &RingTracer{level: level, size: size, events: make([]Event, 0, min(size, 64))}
}

func (t *RingTracer) Emit(ev *Event) {
	if ev == nil || !t.level.ShouldEmit(ev.Scope) {
		return
	}
	rec := *ev
	if rec.Seq == 0 {
		rec.Seq = NextSeq()
	}

	t.mu.Lock()
	if len(t.events) < t.size {
		t.events = append(t.events, rec)
	} else {
		t.events[t.next] = rec
	}
	t.next = (t.next + 1) % t.size
	t.mu.Unlock()
}

// Snapshot returns the remembered events, oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, 0, len(t.events))
	if len(t.events) < t.size {
		return append(out, t.events...)
	}
	out = append(out, t.events[t.next:]...)
	return append(out, t.events[:t.next]...)
}

// Dump writes the remembered events to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
