package session

import "testing"

func TestDiff(t *testing.T) {
	cases := []struct {
		name          string
		before, after string
		want          Edit
	}{
		{"append", "+4", "+44", Edit{Start: 2, End: 2, Text: "4"}},
		{"backspace", "+44 ", "+44", Edit{Start: 3, End: 4}},
		{"middle insert", "+1 201", "+1 (201", Edit{Start: 3, End: 3, Text: "("}},
		{"replace all", "123", "+7", Edit{Start: 0, End: 3, Text: "+7"}},
		{"equal", "abc", "abc", Edit{Start: 3, End: 3}},
		{"repeated rune", "+444", "+44", Edit{Start: 3, End: 4}},
		{"multibyte", "  1", " 1", Edit{Start: 1, End: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Diff(tc.before, tc.after); got != tc.want {
				t.Fatalf("Diff(%q, %q) = %+v, want %+v", tc.before, tc.after, got, tc.want)
			}
		})
	}
}

func TestEditClamp(t *testing.T) {
	got := Replace(-3, 99, "x").clamp(4)
	if got.Start != 0 || got.End != 4 {
		t.Fatalf("clamp = %+v", got)
	}
	got = Replace(3, 1, "").clamp(4)
	if got.Start != 3 || got.End != 3 || !got.empty() {
		t.Fatalf("inverted range should collapse, got %+v", got)
	}
}
