// Package testkit holds invariant checks shared by tests that run against
// real metadata.
package testkit

import (
	"fmt"
	"slices"
	"strconv"

	"fortio.org/safecast"

	"telinput/internal/phone"
)

// maxCallingCode is the largest ITU calling code.
const maxCallingCode = 999

// CallingCodeNumber converts a calling code to its numeric value, checking
// that it is 1-3 digits without a leading zero.
func CallingCodeNumber(code phone.CallingCode) (uint16, error) {
	s := string(code)
	if s == "" || len(s) > 3 || s[0] == '0' || phone.ExtractDigits(s) != s {
		return 0, fmt.Errorf("malformed calling code %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("calling code %q: %w", s, err)
	}
	v, err := safecast.Conv[uint16](n)
	if err != nil {
		return 0, fmt.Errorf("calling code %q overflow: %w", s, err)
	}
	if v > maxCallingCode {
		return 0, fmt.Errorf("calling code %d out of range", v)
	}
	return v, nil
}

// CheckRegistry runs the registry invariants:
// 1) countries are unique two-letter upper-case codes
// 2) every calling code is well formed
// 3) each country is listed under its own calling code
func CheckRegistry(r *phone.Registry) error {
	if r == nil {
		return fmt.Errorf("nil registry")
	}
	countries := r.Countries()
	if len(countries) == 0 {
		return fmt.Errorf("registry is empty")
	}
	seen := make(map[phone.CountryCode]struct{}, len(countries))
	for _, c := range countries {
		if len(c) != 2 || c[0] < 'A' || c[0] > 'Z' || c[1] < 'A' || c[1] > 'Z' {
			return fmt.Errorf("malformed country code %q", c)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("duplicate country %s", c)
		}
		seen[c] = struct{}{}

		code, ok := r.CallingCodeOf(c)
		if !ok {
			return fmt.Errorf("no calling code for %s", c)
		}
		if _, err := CallingCodeNumber(code); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		if !slices.Contains(r.CountriesForCallingCode(code), c) {
			return fmt.Errorf("%s missing from countries of +%s", c, code)
		}
	}
	return nil
}

// CheckMask verifies that mask has one placeholder per example digit, or
// fewer when the national rendering shows fewer digits than the example.
func CheckMask(mask phone.Mask, ex phone.Example) error {
	rendered := len(phone.ExtractDigits(ex.NationalFormat))
	want := min(rendered, len(phone.ExtractDigits(ex.Digits)))
	if got := mask.Placeholders(); got != want {
		return fmt.Errorf("mask %q has %d placeholders, want %d (example %q)", mask, got, want, ex.NationalFormat)
	}
	for _, r := range mask {
		if phone.IsDigit(r) {
			return fmt.Errorf("mask %q keeps a digit", mask)
		}
	}
	return nil
}
