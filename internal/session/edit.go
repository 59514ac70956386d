package session

import "unicode/utf8"

// Edit replaces the runes [Start, End) of the current text with Text.
// An insertion has Start == End, a deletion has empty Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Insert returns an edit inserting text at rune offset at.
func Insert(at int, text string) Edit { return Edit{Start: at, End: at, Text: text} }

// Delete returns an edit removing the runes [start, end).
func Delete(start, end int) Edit { return Edit{Start: start, End: end} }

// Replace returns an edit replacing the runes [start, end) with text.
func Replace(start, end int, text string) Edit { return Edit{Start: start, End: end, Text: text} }

// Diff describes the change from before to after as a single edit, using
// their common prefix and suffix. Equal strings give an empty edit at the
// end of the text.
func Diff(before, after string) Edit {
	b, a := []rune(before), []rune(after)
	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(b)-prefix && suffix < len(a)-prefix &&
		b[len(b)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}
	return Replace(prefix, len(b)-suffix, string(a[prefix:len(a)-suffix]))
}

func (e Edit) empty() bool { return e.Start == e.End && e.Text == "" }

// clamp keeps the edit inside a text of n runes.
func (e Edit) clamp(n int) Edit {
	e.Start = min(max(e.Start, 0), n)
	e.End = min(max(e.End, e.Start), n)
	return e
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
