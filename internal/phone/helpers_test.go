package phone

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeProvider is a small deterministic dialing plan:
// +1 CA/US, +33 FR, +44 GB/GG/IM/JE, +7 KZ/RU.
type fakeProvider struct {
	countries []CountryCode
	codes     map[CountryCode]CallingCode
	examples  map[CountryCode]Example
	guesses   map[string]Guess // keyed by the exact accumulated input
	strict    map[string]strictResult
	fed       []string // inputs seen by accumulators, one entry per parse
}

type strictResult struct {
	num StrictNumber
	err error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		countries: []CountryCode{"CA", "FR", "GB", "GG", "IM", "JE", "KZ", "RU", "US"},
		codes: map[CountryCode]CallingCode{
			"CA": "1", "US": "1",
			"FR": "33",
			"GB": "44", "GG": "44", "IM": "44", "JE": "44",
			"KZ": "7", "RU": "7",
		},
		examples: map[CountryCode]Example{
			"CA": {Digits: "5062345678", NationalFormat: "(506) 234-5678"},
			"US": {Digits: "2015550123", NationalFormat: "(201) 555-0123"},
			"FR": {Digits: "612345678", NationalFormat: "06 12 34 56 78"},
			"GB": {Digits: "7400123456", NationalFormat: "07400 123456"},
			"GG": {Digits: "7781123456", NationalFormat: "07781 123456"},
			"IM": {Digits: "7924123456", NationalFormat: "07924 123456"},
			"JE": {Digits: "7797712345", NationalFormat: "07797 712345"},
			"KZ": {Digits: "7710009998", NationalFormat: "8 (771) 000 9998"},
			"RU": {Digits: "9123456789", NationalFormat: "8 (912) 345-67-89"},
		},
		guesses: map[string]Guess{},
		strict:  map[string]strictResult{},
	}
}

func (p *fakeProvider) Countries() []CountryCode { return p.countries }

func (p *fakeProvider) CallingCodeFor(c CountryCode) (CallingCode, error) {
	code, ok := p.codes[c]
	if !ok {
		return "", ErrUnknownCountry
	}
	return code, nil
}

func (p *fakeProvider) ExampleNumber(c CountryCode) (Example, error) {
	ex, ok := p.examples[c]
	if !ok {
		return Example{}, ErrNoExample
	}
	return ex, nil
}

func (p *fakeProvider) NewAccumulator() Accumulator {
	p.fed = append(p.fed, "")
	return &fakeAccumulator{p: p, idx: len(p.fed) - 1}
}

func (p *fakeProvider) StrictParse(text string, country CountryCode) (StrictNumber, error) {
	res, ok := p.strict[text+"|"+string(country)]
	if !ok {
		return StrictNumber{}, NewStructuralError(KindNotANumber, nil)
	}
	return res.num, res.err
}

type fakeAccumulator struct {
	p   *fakeProvider
	idx int
	sb  strings.Builder
}

func (a *fakeAccumulator) Input(r rune) {
	a.sb.WriteRune(r)
	a.p.fed[a.idx] = a.sb.String()
}

func (a *fakeAccumulator) Number() (Guess, bool) {
	g, ok := a.p.guesses[a.sb.String()]
	return g, ok
}

func newTestInterpreter(t *testing.T, p *fakeProvider) *Interpreter {
	t.Helper()
	in, err := New(context.Background(), p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return in
}

var errBoom = errors.New("boom")
