package phone

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCountry is returned for countries the provider does not know.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrNoExample is returned when a country has no example number.
	ErrNoExample = errors.New("no example number")
	// ErrEmptyRegistry is returned when the provider lists no countries.
	ErrEmptyRegistry = errors.New("provider returned no countries")
)

// Structural parse error kinds.
const (
	KindInvalidCountry = "INVALID_COUNTRY"
	KindNotANumber     = "NOT_A_NUMBER"
	KindTooShort       = "TOO_SHORT"
	KindTooLong        = "TOO_LONG"
)

// StructuralError reports text that cannot be read as a phone number at all.
type StructuralError struct {
	Kind string
	Err  error // underlying library error, may be nil
}

// NewStructuralError wraps err under the given kind.
func NewStructuralError(kind string, err error) *StructuralError {
	return &StructuralError{Kind: kind, Err: err}
}

func (e *StructuralError) Error() string {
	if e.Err == nil {
		return e.Kind
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }
