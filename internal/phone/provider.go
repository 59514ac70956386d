package phone

// CountryCode is an ISO 3166-1 alpha-2 region, e.g. "GB".
type CountryCode string

// CallingCode is an international dialing prefix without '+', e.g. "44".
type CallingCode string

// Example is a country's example national number.
type Example struct {
	Digits         string // national significant number
	NationalFormat string // the number rendered in national format
}

// Guess is the best interpretation an Accumulator can give for its input.
type Guess struct {
	Country           CountryCode // empty until disambiguated
	NationalNumber    string
	CallingCode       CallingCode
	PossibleCountries []CountryCode
	Valid             bool
}

// Accumulator consumes input one character at a time and tolerates
// incomplete numbers. Instances are single-use.
type Accumulator interface {
	Input(r rune)
	// Number returns the current best guess, false if there is none yet.
	Number() (Guess, bool)
}

// StrictNumber is the outcome of a successful strict parse.
type StrictNumber struct {
	Country        CountryCode // empty if no region could be determined
	CallingCode    CallingCode
	NationalNumber string
	Possible       bool // national number length is possible for the region
}

// Provider is the phone metadata capability the interpreter depends on.
type Provider interface {
	// Countries lists supported countries in a stable order.
	Countries() []CountryCode
	CallingCodeFor(country CountryCode) (CallingCode, error)
	ExampleNumber(country CountryCode) (Example, error)
	// NewAccumulator returns a fresh as-you-type accumulator.
	NewAccumulator() Accumulator
	// StrictParse parses text as a whole (no extraction from surrounding
	// text). Structural failures are reported as *StructuralError.
	StrictParse(text string, defaultCountry CountryCode) (StrictNumber, error)
}
