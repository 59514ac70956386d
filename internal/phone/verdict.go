package phone

// Verdict classifies a candidate number against an expected country.
// Besides the constants below it may hold a structural error kind such as
// KindNotANumber.
type Verdict string

const (
	Valid          Verdict = "VALID"
	Invalid        Verdict = "INVALID"
	AnotherCountry Verdict = "ANOTHER_COUNTRY"
	TooShort       Verdict = "TOO_SHORT"
)

// OK reports whether the verdict is Valid.
func (v Verdict) OK() bool { return v == Valid }

// Structural reports whether the verdict carries a structural error kind.
func (v Verdict) Structural() bool {
	switch v {
	case Valid, Invalid, AnotherCountry, TooShort:
		return false
	}
	return v != ""
}

// Message is the inline message shown for a non-valid verdict.
func (v Verdict) Message() string {
	switch v {
	case Valid:
		return ""
	case Invalid:
		return "invalid phone number"
	case AnotherCountry:
		return "number belongs to another country"
	case TooShort:
		return "number is too short"
	case KindInvalidCountry:
		return "unknown country calling code"
	case KindNotANumber:
		return "not a phone number"
	case KindTooLong:
		return "number is too long"
	}
	return "invalid phone number (" + string(v) + ")"
}
