package metadata

import (
	"context"
	"slices"
	"testing"

	"telinput/internal/phone"
	"telinput/internal/testkit"
)

func newInterpreter(t *testing.T) *phone.Interpreter {
	t.Helper()
	in, err := phone.New(context.Background(), Default())
	if err != nil {
		t.Fatalf("phone.New: %v", err)
	}
	return in
}

func TestRegistryInvariants(t *testing.T) {
	in := newInterpreter(t)
	if err := testkit.CheckRegistry(in.Registry()); err != nil {
		t.Fatal(err)
	}
	if got := in.CountriesForCallingCode("7"); !slices.Equal(got, []phone.CountryCode{"KZ", "RU"}) {
		t.Fatalf("+7 countries = %v", got)
	}
}

func TestMasks(t *testing.T) {
	in := newInterpreter(t)
	cases := map[phone.CountryCode]phone.Mask{
		"US": "(###) ###-####",
		"GB": "#### ######",
		"FR": "# ## ## ## ##",
		"RU": "(###) ###-##-##",
	}
	for country, want := range cases {
		got, ok := in.MaskFor(country)
		if !ok || got != want {
			t.Errorf("MaskFor(%s) = %q, %v; want %q", country, got, ok, want)
		}
	}
}

func TestMaskInvariantAllCountries(t *testing.T) {
	in := newInterpreter(t)
	p := Default()
	for _, c := range in.Registry().Countries() {
		mask, ok := in.MaskFor(c)
		if !ok || mask == "" {
			t.Errorf("%s: no mask", c)
			continue
		}
		ex, err := p.ExampleNumber(c)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if err := testkit.CheckMask(mask, ex); err != nil {
			t.Errorf("%s: %v", c, err)
		}
	}
}

func TestValidateScenarios(t *testing.T) {
	in := newInterpreter(t)
	cases := []struct {
		candidate string
		country   phone.CountryCode
		want      phone.Verdict
	}{
		{"201-555-0123", "US", phone.Valid},
		{"+1 201-555-0123", "US", phone.Valid},
		{"+44 7400 123456", "GB", phone.Valid},
		{"+44 7400 123456", "US", phone.AnotherCountry},
		{"555-0100", "US", phone.TooShort},
		{"2015550123", "FR", phone.TooShort},
		{"call me", "US", phone.Verdict(phone.KindNotANumber)},
	}
	for _, tc := range cases {
		got, err := in.Validate(tc.candidate, tc.country)
		if err != nil {
			t.Errorf("Validate(%q, %s): %v", tc.candidate, tc.country, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Validate(%q, %s) = %s, want %s", tc.candidate, tc.country, got, tc.want)
		}
	}
}

func TestParseNumberPartial(t *testing.T) {
	in := newInterpreter(t)

	if _, ok := in.ParseNumber(""); ok {
		t.Fatal("empty input parsed")
	}
	p, ok := in.ParseNumber("+44 20")
	if !ok {
		t.Fatal("+44 20 not parsed")
	}
	if p.CallingCode != "44" || !slices.Contains(p.PossibleCountries, "GB") {
		t.Fatalf("parsed = %+v", p)
	}
	p, ok = in.ParseNumber("+7")
	if !ok || !slices.Equal(p.PossibleCountries, []phone.CountryCode{"KZ", "RU"}) {
		t.Fatalf("+7 parsed = %+v, %v", p, ok)
	}
}

func TestPrefixesNeverFail(t *testing.T) {
	in := newInterpreter(t)
	full := []rune("+7 (912) 345-67-89")
	for i := 1; i <= len(full); i++ {
		raw := string(full[:i])
		p, ok := in.ParseNumber(raw)
		if !ok || p.NationalNumber == "" {
			continue
		}
		country := p.EffectiveCountry()
		code, _ := in.CallingCodeOf(country)
		if _, err := in.Validate("+"+string(code)+p.NationalNumber, country); err != nil {
			t.Fatalf("prefix %q: %v", raw, err)
		}
	}
}
