package observ

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	cur := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		cur = cur.Add(step)
		return cur
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	a := tm.Begin("registry")
	tm.End(a, "249 countries")
	b := tm.Begin("parse")
	tm.End(b, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 2 || r.Phases[0].Note != "249 countries" {
		t.Fatalf("first phase = %+v", r.Phases[0])
	}
	if r.TotalMS != 4 {
		t.Fatalf("total = %v, want 4", r.TotalMS)
	}
}

func TestTimerMeasure(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)
	boom := errors.New("boom")

	if err := tm.Measure("ok", func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if err := tm.Measure("fail", func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Measure returned %v", err)
	}
	if tm.Len() != 2 {
		t.Fatalf("len = %d", tm.Len())
	}
	sum := tm.Summary()
	if !strings.Contains(sum, "// boom") || !strings.Contains(sum, "total") {
		t.Fatalf("summary:\n%s", sum)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("empty report = %+v", r)
	}
}
