package session

import (
	"context"
	"errors"
	"testing"

	"telinput/internal/metadata"
	"telinput/internal/phone"
	"telinput/internal/trace"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	interp, err := phone.New(context.Background(), metadata.Default())
	if err != nil {
		t.Fatalf("phone.New: %v", err)
	}
	return New(context.Background(), interp, opts)
}

func typeAll(t *testing.T, s *Session, text string) State {
	t.Helper()
	var st State
	for _, r := range text {
		var err error
		if st, err = s.Type(r); err != nil {
			t.Fatalf("Type(%q) after %q: %v", r, s.Text(), err)
		}
	}
	return st
}

func TestSessionTypingFullNumber(t *testing.T) {
	s := newSession(t, Options{})
	st := typeAll(t, s, "+44 7400 123456")

	if !st.HasNumber {
		t.Fatalf("expected a number for %q", st.Raw)
	}
	if st.Country != "GB" {
		t.Fatalf("country = %q, want GB", st.Country)
	}
	if st.Parsed.NationalNumber != "7400123456" {
		t.Fatalf("national = %q", st.Parsed.NationalNumber)
	}
	if st.Verdict != phone.Valid {
		t.Fatalf("verdict = %q, want VALID", st.Verdict)
	}
	if st.Display != "+44 7400 123456" {
		t.Fatalf("display = %q", st.Display)
	}
}

func TestSessionPartialNumberShowsPlaceholders(t *testing.T) {
	s := newSession(t, Options{EmptyDigit: '_'})
	st := typeAll(t, s, "+1 201")

	if st.Parsed.CallingCode != "1" {
		t.Fatalf("calling code = %q", st.Parsed.CallingCode)
	}
	if st.Mask != "(###) ###-####" {
		t.Fatalf("mask = %q", st.Mask)
	}
	if st.Display != "+1 (201) ___-____" {
		t.Fatalf("display = %q", st.Display)
	}
	if st.Verdict.OK() {
		t.Fatalf("partial number must not be valid")
	}
}

func TestSessionDefaultCountryBeforeInput(t *testing.T) {
	s := newSession(t, Options{DefaultCountry: "FR"})
	st := s.State()
	if st.Country != "FR" || st.Mask != "# ## ## ## ##" {
		t.Fatalf("initial state = %+v", st)
	}
	if st.Verdict != "" || st.HasNumber {
		t.Fatalf("empty input must have no verdict, got %+v", st)
	}
}

func TestSessionRestoresDeletedSymbols(t *testing.T) {
	s := newSession(t, Options{})
	typeAll(t, s, "+1 (201) ")

	// remove ") " one rune at a time, then type a digit
	if _, err := s.Backspace(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Backspace(); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "+1 (201" || s.Buffered() != 2 {
		t.Fatalf("after deletes text=%q buffered=%d", s.Text(), s.Buffered())
	}

	if _, err := s.Type('5'); err != nil {
		t.Fatal(err)
	}
	if s.Text() != "+1 (201) 5" {
		t.Fatalf("text = %q, want symbols restored", s.Text())
	}
	if s.Buffered() != 0 {
		t.Fatalf("buffer should be drained, has %d", s.Buffered())
	}
}

func TestSessionForgetsSymbolsOnOtherEdits(t *testing.T) {
	cases := []struct {
		name string
		edit func(s *Session) error
	}{
		{"digit deleted", func(s *Session) error { _, err := s.Backspace(); return err }},
		{"separator typed", func(s *Session) error { _, err := s.Type('-'); return err }},
		{"insert elsewhere", func(s *Session) error { _, err := s.Apply(Insert(0, "9")); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSession(t, Options{})
			typeAll(t, s, "+1 201 ")
			if _, err := s.Backspace(); err != nil {
				t.Fatal(err)
			}
			if s.Buffered() != 1 {
				t.Fatalf("space should be captured")
			}
			if err := tc.edit(s); err != nil {
				t.Fatal(err)
			}
			if s.Buffered() != 0 {
				t.Fatalf("buffer kept %d symbols", s.Buffered())
			}
		})
	}
}

func TestSessionBufferCapacity(t *testing.T) {
	s := newSession(t, Options{BufferSize: 2})
	typeAll(t, s, "+1 ---")
	for range 3 {
		if _, err := s.Backspace(); err != nil {
			t.Fatal(err)
		}
	}
	if s.Buffered() != 2 {
		t.Fatalf("buffered = %d, want capacity 2", s.Buffered())
	}
}

func TestSessionSetTextAndReset(t *testing.T) {
	s := newSession(t, Options{DefaultCountry: "US"})
	st, err := s.SetText("201-555-0123")
	if err != nil {
		t.Fatal(err)
	}
	if st.Raw != "201-555-0123" {
		t.Fatalf("raw = %q", st.Raw)
	}

	s.Reset()
	if s.Text() != "" || s.Buffered() != 0 {
		t.Fatalf("reset left text=%q buffered=%d", s.Text(), s.Buffered())
	}
	if st := s.State(); st.Country != "US" || st.Raw != "" {
		t.Fatalf("state after reset = %+v", st)
	}
}

func TestSessionEmptyEditIsNoop(t *testing.T) {
	s := newSession(t, Options{})
	typeAll(t, s, "+7")
	before := s.State()
	st, err := s.Apply(Insert(10, ""))
	if err != nil {
		t.Fatal(err)
	}
	if st.Raw != before.Raw || st.Display != before.Display || st.Verdict != before.Verdict {
		t.Fatalf("noop edit changed state: %+v", st)
	}
}

func TestSessionTracesEdits(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	interp, err := phone.New(ctx, metadata.Default())
	if err != nil {
		t.Fatal(err)
	}
	s := New(ctx, interp, Options{})
	if _, err := s.SetText("+44 7"); err != nil {
		t.Fatal(err)
	}

	var edits int
	for _, ev := range ring.Snapshot() {
		if ev.Scope == trace.ScopeSession && ev.Name == "edit" && ev.Kind == trace.KindSpanEnd {
			edits++
		}
	}
	if edits != 1 {
		t.Fatalf("edit spans = %d, want 1", edits)
	}
}

// brokenValidation serves real metadata but fails every strict parse.
type brokenValidation struct{ phone.Provider }

func (brokenValidation) StrictParse(string, phone.CountryCode) (phone.StrictNumber, error) {
	return phone.StrictNumber{}, errors.New("metadata unavailable")
}

func TestSessionStateFollowsTextOnValidationError(t *testing.T) {
	interp, err := phone.New(context.Background(), brokenValidation{metadata.Default()})
	if err != nil {
		t.Fatalf("phone.New: %v", err)
	}
	s := New(context.Background(), interp, Options{})
	for _, r := range "+1 20" {
		st, err := s.Type(r)
		if st.Raw != s.Text() || s.State().Raw != s.Text() {
			t.Fatalf("after %q: state raw %q, text %q", r, s.State().Raw, s.Text())
		}
		if err != nil && st.Verdict != "" {
			t.Fatalf("after %q: verdict %q on error", r, st.Verdict)
		}
	}
	if _, err := s.Type('1'); err == nil {
		t.Fatal("expected validation error")
	}
	if got := s.State(); got.Raw != "+1 201" || got.Display != "+1 (201) ###-####" {
		t.Fatalf("state = %+v", got)
	}
}
