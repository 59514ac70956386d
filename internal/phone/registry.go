package phone

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Registry maps countries to calling codes and back. It is built once and
// read-only afterwards, so it may be shared between goroutines.
type Registry struct {
	countries     []CountryCode
	callingCodes  map[CountryCode]CallingCode
	byCallingCode map[CallingCode][]CountryCode
}

// NewRegistry queries p for every supported country. The order of
// p.Countries() becomes the registry's iteration order.
func NewRegistry(p Provider) (*Registry, error) {
	countries := p.Countries()
	if len(countries) == 0 {
		return nil, ErrEmptyRegistry
	}

	r := &Registry{
		countries:     make([]CountryCode, 0, len(countries)),
		callingCodes:  make(map[CountryCode]CallingCode, len(countries)),
		byCallingCode: make(map[CallingCode][]CountryCode),
	}
	for _, c := range countries {
		if _, dup := r.callingCodes[c]; dup {
			continue
		}
		code, err := p.CallingCodeFor(c)
		if err != nil {
			return nil, fmt.Errorf("calling code for %s: %w", c, err)
		}
		r.countries = append(r.countries, c)
		r.callingCodes[c] = code
		r.byCallingCode[code] = append(r.byCallingCode[code], c)
	}
	return r, nil
}

// Countries returns supported countries in registry order.
func (r *Registry) Countries() []CountryCode {
	return slices.Clone(r.countries)
}

// Len returns the number of supported countries.
func (r *Registry) Len() int { return len(r.countries) }

// IsSupported reports whether s is exactly a supported country code.
// No normalization is applied.
func (r *Registry) IsSupported(s string) bool {
	_, ok := r.callingCodes[CountryCode(s)]
	return ok
}

// CallingCodeOf returns the calling code of a supported country.
func (r *Registry) CallingCodeOf(c CountryCode) (CallingCode, bool) {
	code, ok := r.callingCodes[c]
	return code, ok
}

// CountriesForCallingCode returns every country dialed with code, in
// registry order. Empty if none.
func (r *Registry) CountriesForCallingCode(code CallingCode) []CountryCode {
	return slices.Clone(r.byCallingCode[code])
}

// CallingCodes returns all known calling codes in first-seen order.
func (r *Registry) CallingCodes() []CallingCode {
	seen := make(map[CallingCode]struct{}, len(r.byCallingCode))
	out := make([]CallingCode, 0, len(r.byCallingCode))
	for _, c := range r.countries {
		code := r.callingCodes[c]
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// NormalizeCountry upper-cases a two-character input. It does not check
// that the result is a supported country.
func NormalizeCountry(s string) (CountryCode, bool) {
	if utf8.RuneCountInString(s) != 2 {
		return "", false
	}
	return CountryCode(strings.ToUpper(s)), true
}
