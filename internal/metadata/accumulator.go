package metadata

import (
	"strconv"

	"github.com/nyaruka/phonenumbers"

	"telinput/internal/phone"
)

// maxCallingCodeLength is the longest ITU calling code.
const maxCallingCodeLength = 3

// accumulator collects an international number as it is typed. It only
// guesses once a '+', a known calling code and at least one national digit
// are present. The first character that cannot belong to a phone number
// ends the input.
type accumulator struct {
	plus   bool
	digits []byte
	done   bool
}

func (a *accumulator) Input(r rune) {
	if a.done {
		return
	}
	r = foldRune(r)
	switch {
	case r == '+' && !a.plus && len(a.digits) == 0:
		a.plus = true
	case isASCIIDigit(r):
		a.digits = append(a.digits, byte(r))
	case isPunctuation(r):
	default:
		a.done = true
	}
}

func (a *accumulator) Number() (phone.Guess, bool) {
	// Без '+' страну не угадать: региона по умолчанию нет.
	if !a.plus || len(a.digits) == 0 {
		return phone.Guess{}, false
	}
	digits := string(a.digits)
	code, regions, ok := splitCallingCode(digits)
	if !ok {
		return phone.Guess{}, false
	}
	national := digits[len(code):]
	if national == "" {
		return phone.Guess{}, false
	}

	guess := phone.Guess{
		CallingCode:    phone.CallingCode(code),
		NationalNumber: national,
	}
	if len(regions) == 1 {
		guess.Country = regions[0]
	}

	num, err := phonenumbers.Parse("+"+digits, "")
	if err != nil {
		// Too short or too long to parse yet; the calling code is enough.
		return guess, true
	}
	if guess.Country == "" {
		if region := phonenumbers.GetRegionCodeForNumber(num); isCountryRegion(region) {
			guess.Country = phone.CountryCode(region)
		}
	}
	if phonenumbers.IsPossibleNumber(num) {
		guess.PossibleCountries = regions
	}
	guess.Valid = phonenumbers.IsValidNumber(num)
	return guess, true
}

// splitCallingCode finds the calling code at the start of digits. Calling
// codes are prefix-free, so the first known prefix wins.
func splitCallingCode(digits string) (string, []phone.CountryCode, bool) {
	if digits == "" || digits[0] == '0' {
		return "", nil, false
	}
	for n := 1; n <= maxCallingCodeLength && n <= len(digits); n++ {
		code, err := strconv.Atoi(digits[:n])
		if err != nil {
			return "", nil, false
		}
		regions := countryRegions(phonenumbers.GetRegionCodesForCountryCode(code))
		if len(regions) > 0 {
			return digits[:n], regions, true
		}
	}
	return "", nil, false
}

func countryRegions(regions []string) []phone.CountryCode {
	out := make([]phone.CountryCode, 0, len(regions))
	for _, region := range regions {
		if isCountryRegion(region) {
			out = append(out, phone.CountryCode(region))
		}
	}
	return out
}
