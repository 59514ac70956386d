package phone

import (
	"errors"
	"fmt"

	"telinput/internal/trace"
)

// Validate classifies candidate against the expected country. Structural
// parse failures come back as a verdict carrying their kind; any other
// failure is returned as an error.
func (in *Interpreter) Validate(candidate string, expected CountryCode) (Verdict, error) {
	span := trace.Begin(in.tracer, trace.ScopeParse, "validate", 0)
	verdict, err := in.validate(candidate, expected)
	if err != nil {
		span.End(err.Error())
		return "", err
	}
	span.WithExtra("country", string(expected)).End(string(verdict))
	return verdict, nil
}

func (in *Interpreter) validate(candidate string, expected CountryCode) (Verdict, error) {
	num, err := in.provider.StrictParse(candidate, expected)
	if err != nil {
		var structural *StructuralError
		if errors.As(err, &structural) {
			return Verdict(structural.Kind), nil
		}
		return "", fmt.Errorf("validate %q for %s: %w", candidate, expected, err)
	}

	switch {
	case num.Country == "":
		return Invalid, nil
	case num.Country != expected:
		return AnotherCountry, nil
	case !num.Possible:
		return TooShort, nil
	}
	return Valid, nil
}
