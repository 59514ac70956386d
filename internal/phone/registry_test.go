package phone

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryKeepsProviderOrder(t *testing.T) {
	p := newFakeProvider()
	reg, err := NewRegistry(p)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if got := reg.Countries(); !slices.Equal(got, p.countries) {
		t.Fatalf("Countries() = %v, want %v", got, p.countries)
	}

	cases := []struct {
		code CallingCode
		want []CountryCode
	}{
		{"44", []CountryCode{"GB", "GG", "IM", "JE"}},
		{"1", []CountryCode{"CA", "US"}},
		{"7", []CountryCode{"KZ", "RU"}},
		{"33", []CountryCode{"FR"}},
		{"999", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := reg.CountriesForCallingCode(tc.code)
		if !slices.Equal(got, tc.want) {
			t.Errorf("CountriesForCallingCode(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestRegistryCallingCodesRoundTrip(t *testing.T) {
	reg, err := NewRegistry(newFakeProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	for _, code := range reg.CallingCodes() {
		countries := reg.CountriesForCallingCode(code)
		if len(countries) == 0 {
			t.Fatalf("calling code %s maps to no country", code)
		}
		for _, c := range countries {
			if got, _ := reg.CallingCodeOf(c); got != code {
				t.Errorf("CallingCodeOf(%s) = %s, want %s", c, got, code)
			}
		}
	}
}

func TestRegistryResultIsACopy(t *testing.T) {
	reg, err := NewRegistry(newFakeProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	got := reg.CountriesForCallingCode("44")
	got[0] = "XX"
	if again := reg.CountriesForCallingCode("44"); again[0] != "GB" {
		t.Fatalf("registry mutated through returned slice: %v", again)
	}
}

func TestRegistryIsSupported(t *testing.T) {
	reg, err := NewRegistry(newFakeProvider())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	cases := map[string]bool{
		"GB":  true,
		"US":  true,
		"gb":  false,
		"DE":  false,
		"":    false,
		"GBR": false,
	}
	for in, want := range cases {
		if got := reg.IsSupported(in); got != want {
			t.Errorf("IsSupported(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRegistryErrors(t *testing.T) {
	empty := newFakeProvider()
	empty.countries = nil
	if _, err := NewRegistry(empty); !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("empty provider: err = %v, want ErrEmptyRegistry", err)
	}

	broken := newFakeProvider()
	broken.countries = append(broken.countries, "ZZ")
	if _, err := NewRegistry(broken); !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("unknown country: err = %v, want ErrUnknownCountry", err)
	}
}

func TestNormalizeCountry(t *testing.T) {
	cases := []struct {
		in     string
		want   CountryCode
		wantOK bool
	}{
		{"gb", "GB", true},
		{"Us", "US", true},
		{"FR", "FR", true},
		{"zz", "ZZ", true},
		{"1a", "1A", true},
		{"ÿy", "ŸY", true},
		{"", "", false},
		{"g", "", false},
		{"gbr", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeCountry(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("NormalizeCountry(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
		if !ok {
			continue
		}
		again, ok := NormalizeCountry(string(got))
		if !ok || again != got {
			t.Errorf("NormalizeCountry not idempotent for %q: %q -> %q", tc.in, got, again)
		}
	}
}
