package metadata

import (
	"slices"
	"testing"

	"telinput/internal/phone"
)

func accumulate(s string) (phone.Guess, bool) {
	a := Default().NewAccumulator()
	for _, r := range s {
		a.Input(r)
	}
	return a.Number()
}

func TestAccumulatorNoGuess(t *testing.T) {
	for _, in := range []string{"", "+", "+4", "+44", "201", "2015550123", "+0 123", "++44 20"} {
		if g, ok := accumulate(in); ok {
			t.Errorf("%q: unexpected guess %+v", in, g)
		}
	}
}

func TestAccumulatorGuesses(t *testing.T) {
	cases := []struct {
		in       string
		country  phone.CountryCode
		code     phone.CallingCode
		national string
		valid    bool
	}{
		{in: "+1 201-555-0123", country: "US", code: "1", national: "2015550123", valid: true},
		{in: "+33 6 12", country: "FR", code: "33", national: "612"},
		{in: "+44 7400 123456", country: "GB", code: "44", national: "7400123456", valid: true},
		{in: "＋３３ 6", country: "FR", code: "33", national: "6"},
		{in: "+7 (912) 345-67-89 ext", country: "RU", code: "7", national: "9123456789", valid: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			g, ok := accumulate(tc.in)
			if !ok {
				t.Fatalf("no guess")
			}
			if g.Country != tc.country || g.CallingCode != tc.code || g.NationalNumber != tc.national {
				t.Fatalf("guess = %+v", g)
			}
			if g.Valid != tc.valid {
				t.Fatalf("valid = %v, want %v", g.Valid, tc.valid)
			}
		})
	}
}

func TestAccumulatorPossibleCountries(t *testing.T) {
	g, ok := accumulate("+44 7400 123456")
	if !ok {
		t.Fatal("no guess")
	}
	if !slices.Contains(g.PossibleCountries, "GB") {
		t.Fatalf("possible = %v", g.PossibleCountries)
	}

	g, ok = accumulate("+44 20")
	if !ok {
		t.Fatal("no guess for partial number")
	}
	if len(g.PossibleCountries) != 0 {
		t.Fatalf("partial number should not be possible yet: %v", g.PossibleCountries)
	}
}

func TestSplitCallingCode(t *testing.T) {
	cases := []struct {
		digits string
		code   string
		ok     bool
	}{
		{"12015550123", "1", true},
		{"447400", "44", true},
		{"380501234567", "380", true},
		{"0123", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		code, regions, ok := splitCallingCode(tc.digits)
		if ok != tc.ok || code != tc.code {
			t.Errorf("splitCallingCode(%q) = %q, %v", tc.digits, code, ok)
		}
		if ok && len(regions) == 0 {
			t.Errorf("%q: no regions", tc.digits)
		}
	}
}
