// Package metadata serves phone metadata to the interpreter from
// libphonenumber (github.com/nyaruka/phonenumbers).
package metadata

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"

	"telinput/internal/phone"
)

// Provider implements phone.Provider on top of libphonenumber.
type Provider struct {
	countries []phone.CountryCode
}

var _ phone.Provider = (*Provider)(nil)

var defaultProvider = sync.OnceValue(newProvider)

// Default returns the process-wide provider. The country list is computed
// on first use.
func Default() *Provider { return defaultProvider() }

func newProvider() *Provider {
	regions := phonenumbers.GetSupportedRegions()
	countries := make([]phone.CountryCode, 0, len(regions))
	for region := range regions {
		if !isCountryRegion(region) || exampleFor(region) == nil {
			continue
		}
		countries = append(countries, phone.CountryCode(region))
	}
	slices.Sort(countries)
	return &Provider{countries: countries}
}

// isCountryRegion filters out "001" (non-geographic entities) and other
// pseudo regions.
func isCountryRegion(region string) bool {
	if len(region) != 2 || region == "ZZ" {
		return false
	}
	for i := 0; i < len(region); i++ {
		if region[i] < 'A' || region[i] > 'Z' {
			return false
		}
	}
	return true
}

// exampleFor prefers the mobile example; a mobile mask is what users type
// most of the time.
func exampleFor(region string) *phonenumbers.PhoneNumber {
	if num := phonenumbers.GetExampleNumberForType(region, phonenumbers.MOBILE); num != nil {
		return num
	}
	return phonenumbers.GetExampleNumber(region)
}

// Countries lists supported countries in ascending order.
func (p *Provider) Countries() []phone.CountryCode {
	return slices.Clone(p.countries)
}

// CallingCodeFor returns the calling code of country.
func (p *Provider) CallingCodeFor(country phone.CountryCode) (phone.CallingCode, error) {
	code := phonenumbers.GetCountryCodeForRegion(string(country))
	if code == 0 {
		return "", fmt.Errorf("%q: %w", country, phone.ErrUnknownCountry)
	}
	return phone.CallingCode(strconv.Itoa(code)), nil
}

// ExampleNumber returns the example national number of country.
func (p *Provider) ExampleNumber(country phone.CountryCode) (phone.Example, error) {
	num := exampleFor(string(country))
	if num == nil {
		return phone.Example{}, fmt.Errorf("%q: %w", country, phone.ErrNoExample)
	}
	return phone.Example{
		Digits:         phonenumbers.GetNationalSignificantNumber(num),
		NationalFormat: phonenumbers.Format(num, phonenumbers.NATIONAL),
	}, nil
}

// NewAccumulator returns a fresh as-you-type accumulator.
func (p *Provider) NewAccumulator() phone.Accumulator {
	return &accumulator{}
}

// StrictParse parses text as a whole number, with defaultCountry used for
// nationally written input.
func (p *Provider) StrictParse(text string, defaultCountry phone.CountryCode) (phone.StrictNumber, error) {
	trimmed := strings.TrimSpace(foldWidth(text))
	if !isNumberLike(trimmed) {
		return phone.StrictNumber{}, phone.NewStructuralError(phone.KindNotANumber, nil)
	}

	num, err := phonenumbers.Parse(trimmed, string(defaultCountry))
	if err != nil {
		return phone.StrictNumber{}, classifyParseError(err)
	}

	callingCode := int(num.GetCountryCode())
	region := phonenumbers.GetRegionCodeForNumber(num)
	if !isCountryRegion(region) {
		region = ""
	}
	// A shared plan (e.g. +1) gives no region for numbers valid nowhere;
	// a nationally dialed one still belongs to the default country.
	if region == "" && !strings.HasPrefix(trimmed, "+") &&
		callingCode == phonenumbers.GetCountryCodeForRegion(string(defaultCountry)) {
		region = string(defaultCountry)
	}

	return phone.StrictNumber{
		Country:        phone.CountryCode(region),
		CallingCode:    phone.CallingCode(strconv.Itoa(callingCode)),
		NationalNumber: phonenumbers.GetNationalSignificantNumber(num),
		Possible:       phonenumbers.IsPossibleNumberWithReason(num) == phonenumbers.IS_POSSIBLE,
	}, nil
}

// classifyParseError maps libphonenumber sentinels to structural kinds.
// Anything else is returned as is.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, phonenumbers.ErrInvalidCountryCode):
		return phone.NewStructuralError(phone.KindInvalidCountry, err)
	case errors.Is(err, phonenumbers.ErrNotANumber):
		return phone.NewStructuralError(phone.KindNotANumber, err)
	case errors.Is(err, phonenumbers.ErrTooShortNSN), errors.Is(err, phonenumbers.ErrTooShortAfterIDD):
		return phone.NewStructuralError(phone.KindTooShort, err)
	case errors.Is(err, phonenumbers.ErrNumTooLong):
		return phone.NewStructuralError(phone.KindTooLong, err)
	}
	return err
}
