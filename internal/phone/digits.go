package phone

import "strings"

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ExtractDigits returns the ASCII digits of s in order.
func ExtractDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// Splice replaces deleteCount runes of s starting at rune offset start with
// inserted. Offsets outside s are clamped.
func Splice(s, inserted string, start, deleteCount int) string {
	runes := []rune(s)
	start = min(max(start, 0), len(runes))
	end := min(start+max(deleteCount, 0), len(runes))
	return string(runes[:start]) + inserted + string(runes[end:])
}
