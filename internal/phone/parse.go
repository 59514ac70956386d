package phone

import (
	"slices"
	"strings"

	"telinput/internal/trace"
)

// ParsedNumber is the current interpretation of raw input. It is built
// fresh by every ParseNumber call.
type ParsedNumber struct {
	Country           CountryCode // empty while ambiguous
	PossibleCountries []CountryCode
	NationalNumber    string
	CallingCode       CallingCode // empty for calling-code-only results
	Valid             bool
}

// EffectiveCountry is Country, or the first possible country while the
// number is still ambiguous.
func (p ParsedNumber) EffectiveCountry() CountryCode {
	if p.Country != "" {
		return p.Country
	}
	if len(p.PossibleCountries) > 0 {
		return p.PossibleCountries[0]
	}
	return ""
}

// ParseNumber interprets raw from scratch. The false result means there is
// not enough information yet, it is not an error.
func (in *Interpreter) ParseNumber(raw string) (ParsedNumber, bool) {
	span := trace.Begin(in.tracer, trace.ScopeParse, "parse", 0)
	parsed, ok := in.parse(raw)
	if !ok {
		span.End("absent")
		return ParsedNumber{}, false
	}
	span.WithExtra("country", string(parsed.Country)).
		WithExtra("national", parsed.NationalNumber).
		End(raw)
	return parsed, true
}

func (in *Interpreter) parse(raw string) (ParsedNumber, bool) {
	if strings.TrimSpace(raw) == "" {
		return ParsedNumber{}, false
	}

	acc := in.provider.NewAccumulator()
	for _, r := range raw {
		acc.Input(r)
	}
	guess, ok := acc.Number()
	if !ok {
		return in.parseCallingCode(raw)
	}

	// The accumulator reports no possible countries while only the calling
	// code is known; the registry can still narrow them down.
	possible := slices.Clone(guess.PossibleCountries)
	if len(possible) == 0 {
		possible = in.registry.CountriesForCallingCode(guess.CallingCode)
		if len(possible) == 0 {
			return ParsedNumber{}, false
		}
	}

	return ParsedNumber{
		Country:           guess.Country,
		PossibleCountries: possible,
		NationalNumber:    guess.NationalNumber,
		CallingCode:       guess.CallingCode,
		Valid:             guess.Valid,
	}, true
}

// parseCallingCode reads "+<code>" input that has no national digits yet.
func (in *Interpreter) parseCallingCode(raw string) (ParsedNumber, bool) {
	code, ok := strings.CutPrefix(raw, "+")
	if !ok {
		return ParsedNumber{}, false
	}
	possible := in.registry.CountriesForCallingCode(CallingCode(code))
	if len(possible) == 0 {
		return ParsedNumber{}, false
	}
	return ParsedNumber{PossibleCountries: possible}, true
}
