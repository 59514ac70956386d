package metadata

import "golang.org/x/text/width"

// foldWidth maps full-width forms (e.g. "＋４４") to their ASCII
// counterparts.
func foldWidth(s string) string {
	return width.Fold.String(s)
}

func foldRune(r rune) rune {
	if r < 0x80 {
		return r
	}
	for _, folded := range foldWidth(string(r)) {
		return folded
	}
	return r
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isPunctuation lists the separators allowed between digits.
func isPunctuation(r rune) bool {
	switch r {
	case ' ', '\u00a0', '\t', '-', '(', ')', '.', '/', '[', ']', '~':
		return true
	}
	return false
}

// isNumberLike reports whether all of s is a plausible phone number: an
// optional leading '+', then digits and separators, with at least one
// digit.
func isNumberLike(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case isASCIIDigit(r):
			digits++
		case r == '+':
			if i != 0 {
				return false
			}
		case isPunctuation(r):
		default:
			return false
		}
	}
	return digits > 0
}
