package phone

import (
	"regexp"
	"strings"
)

// Placeholder marks a digit position in a Mask.
const Placeholder = '#'

// Mask is a national number template such as "(###) ###-####".
type Mask string

// Placeholders counts the digit positions of m.
func (m Mask) Placeholders() int {
	return strings.Count(string(m), string(Placeholder))
}

// Fill replaces placeholders with digits in order; once digits run out the
// remaining placeholders become empty. Surplus digits are dropped.
func (m Mask) Fill(digits string, empty rune) string {
	var sb strings.Builder
	rest := []rune(digits)
	for _, r := range string(m) {
		if r != Placeholder {
			sb.WriteRune(r)
			continue
		}
		if len(rest) > 0 {
			sb.WriteRune(rest[0])
			rest = rest[1:]
			continue
		}
		sb.WriteRune(empty)
	}
	return sb.String()
}

var digitRe = regexp.MustCompile(`\d`)

// DeriveMask builds the mask for an example number. The national rendering
// is split around every digit; leading fragments are dropped so that only
// as many placeholders remain as the example has significant digits (a
// rendered national prefix disappears this way).
func DeriveMask(ex Example) Mask {
	fragments := digitRe.Split(ex.NationalFormat, -1)
	maskLength := len(ExtractDigits(ex.Digits))
	start := max(0, len(fragments)-maskLength-1)
	return Mask(strings.TrimSpace(strings.Join(fragments[start:], string(Placeholder))))
}
