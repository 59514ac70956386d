package phone

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"telinput/internal/trace"
)

// Interpreter is the entry point used by input components: it owns the
// country registry and the per-country mask cache of one Provider.
// All of its state is frozen after New, so it can be shared.
type Interpreter struct {
	provider Provider
	registry *Registry
	masks    map[CountryCode]func() (Mask, bool)
	tracer   trace.Tracer
}

// New builds the registry from p. The tracer in ctx, if any, is kept for
// later parse and validate calls.
func New(ctx context.Context, p Provider) (*Interpreter, error) {
	if p == nil {
		return nil, fmt.Errorf("nil provider")
	}
	tracer := trace.FromContext(ctx)

	span := trace.Begin(tracer, trace.ScopeDriver, "registry", 0)
	reg, err := NewRegistry(p)
	if err != nil {
		span.End("failed")
		return nil, fmt.Errorf("build country registry: %w", err)
	}
	span.WithExtra("countries", strconv.Itoa(reg.Len())).
		WithExtra("calling_codes", strconv.Itoa(len(reg.byCallingCode))).
		End("")

	in := &Interpreter{
		provider: p,
		registry: reg,
		masks:    make(map[CountryCode]func() (Mask, bool), reg.Len()),
		tracer:   tracer,
	}
	for _, c := range reg.countries {
		in.masks[c] = sync.OnceValues(func() (Mask, bool) {
			return in.deriveMask(c)
		})
	}
	return in, nil
}

// Registry returns the country registry.
func (in *Interpreter) Registry() *Registry { return in.registry }

// IsSupportedCountry reports whether s is a supported country code.
func (in *Interpreter) IsSupportedCountry(s string) bool {
	return in.registry.IsSupported(s)
}

// CountriesForCallingCode returns the countries dialed with code.
func (in *Interpreter) CountriesForCallingCode(code CallingCode) []CountryCode {
	return in.registry.CountriesForCallingCode(code)
}

// CallingCodeOf returns the calling code of country.
func (in *Interpreter) CallingCodeOf(country CountryCode) (CallingCode, bool) {
	return in.registry.CallingCodeOf(country)
}

// MaskFor returns the display mask of country, false for an empty or
// unsupported country.
func (in *Interpreter) MaskFor(country CountryCode) (Mask, bool) {
	if country == "" {
		return "", false
	}
	mask, ok := in.masks[country]
	if !ok {
		return "", false
	}
	return mask()
}

func (in *Interpreter) deriveMask(country CountryCode) (Mask, bool) {
	ex, err := in.provider.ExampleNumber(country)
	if err != nil {
		trace.Point(in.tracer, trace.ScopeParse, "mask", fmt.Sprintf("%s: %v", country, err))
		return "", false
	}
	mask := DeriveMask(ex)
	if mask == "" {
		return "", false
	}
	return mask, true
}
