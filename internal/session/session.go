// Package session holds the state of one phone input: its raw text and its
// own symbol buffer. A Session is not safe for concurrent use.
package session

import (
	"context"
	"fmt"

	"telinput/internal/phone"
	"telinput/internal/trace"
)

// Options configures a Session.
type Options struct {
	DefaultCountry phone.CountryCode // used until the input names a country
	BufferSize     int               // symbol buffer capacity, 0 for default
	EmptyDigit     rune              // shown for missing digits, 0 for '#'
}

// State is what an input component renders after an edit.
type State struct {
	Raw       string
	Parsed    phone.ParsedNumber
	HasNumber bool // Parsed is meaningful
	Country   phone.CountryCode
	Mask      phone.Mask
	Display   string
	Verdict   phone.Verdict // empty until national digits are present
}

// Session applies edits to the raw input and reinterprets it after each one.
type Session struct {
	interp    *phone.Interpreter
	opts      Options
	tracer    trace.Tracer
	text      string
	symbols   *phone.SymbolBuffer
	restoreAt int // offset where captured symbols go back, -1 if none
	state     State
}

// New starts an empty session.
func New(ctx context.Context, interp *phone.Interpreter, opts Options) *Session {
	if opts.EmptyDigit == 0 {
		opts.EmptyDigit = phone.Placeholder
	}
	s := &Session{
		interp:    interp,
		opts:      opts,
		tracer:    trace.FromContext(ctx),
		symbols:   phone.NewSymbolBuffer(opts.BufferSize),
		restoreAt: -1,
	}
	s.state = s.emptyState()
	return s
}

// Text returns the current raw text.
func (s *Session) Text() string { return s.text }

// State returns the state after the last edit.
func (s *Session) State() State { return s.state }

// Buffered returns the number of captured symbols.
func (s *Session) Buffered() int { return s.symbols.Len() }

// Reset clears the text and the symbol buffer.
func (s *Session) Reset() {
	s.text = ""
	s.symbols.Reset()
	s.restoreAt = -1
	s.state = s.emptyState()
}

// Type appends r, like a keystroke with the caret at the end.
func (s *Session) Type(r rune) (State, error) {
	n := runeLen(s.text)
	return s.Apply(Insert(n, string(r)))
}

// Backspace removes the last rune.
func (s *Session) Backspace() (State, error) {
	n := runeLen(s.text)
	if n == 0 {
		return s.state, nil
	}
	return s.Apply(Delete(n-1, n))
}

// SetText replaces the whole text, e.g. on paste.
func (s *Session) SetText(text string) (State, error) {
	return s.Apply(Diff(s.text, text))
}

// Apply performs e and returns the new state.
//
// Deleting only separators captures them in the symbol buffer; typing
// digits at the same place puts them back in front of the digits. Every
// other edit forgets the captured symbols.
func (s *Session) Apply(e Edit) (State, error) {
	runes := []rune(s.text)
	e = e.clamp(len(runes))
	if e.empty() {
		return s.state, nil
	}
	removed := string(runes[e.Start:e.End])
	inserted := e.Text

	switch {
	case inserted == "" && phone.ExtractDigits(removed) == "":
		s.symbols.Add(removed)
		s.restoreAt = e.Start
		trace.Point(s.tracer, trace.ScopeSession, "capture", removed)
	case e.Start == e.End && e.Start == s.restoreAt && s.symbols.Len() > 0 &&
		phone.ExtractDigits(inserted) != "":
		restored := s.symbols.RestoreAll()
		inserted = restored + inserted
		s.restoreAt = -1
		trace.Point(s.tracer, trace.ScopeSession, "restore", restored)
	default:
		s.symbols.Reset()
		s.restoreAt = -1
	}

	s.text = phone.Splice(s.text, inserted, e.Start, e.End-e.Start)

	span := trace.Begin(s.tracer, trace.ScopeSession, "edit", 0)
	st, err := s.refresh()
	if err != nil {
		span.End(err.Error())
		return st, err
	}
	span.WithExtra("country", string(st.Country)).
		WithExtra("verdict", string(st.Verdict)).
		End(s.text)
	return st, nil
}

func (s *Session) emptyState() State {
	st := State{Country: s.opts.DefaultCountry}
	if m, ok := s.interp.MaskFor(st.Country); ok {
		st.Mask = m
	}
	return st
}

func (s *Session) refresh() (State, error) {
	st := s.emptyState()
	st.Raw = s.text
	st.Display = s.text

	parsed, ok := s.interp.ParseNumber(s.text)
	if !ok {
		s.state = st
		return st, nil
	}
	st.Parsed = parsed
	st.HasNumber = true
	if c := parsed.EffectiveCountry(); c != "" {
		st.Country = c
		st.Mask = ""
		if m, ok := s.interp.MaskFor(c); ok {
			st.Mask = m
		}
	}

	code := parsed.CallingCode
	if code == "" {
		code, _ = s.interp.CallingCodeOf(st.Country)
	}
	if st.Mask != "" && code != "" {
		st.Display = "+" + string(code) + " " + st.Mask.Fill(parsed.NationalNumber, s.opts.EmptyDigit)
	}

	if parsed.NationalNumber != "" && st.Country != "" && code != "" {
		verdict, err := s.interp.Validate("+"+string(code)+parsed.NationalNumber, st.Country)
		if err != nil {
			// the text is kept; the state describes it without a verdict
			s.state = st
			return st, fmt.Errorf("validate %q: %w", s.text, err)
		}
		st.Verdict = verdict
	}

	s.state = st
	return st, nil
}
