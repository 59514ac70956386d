package phone

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCountryName(t *testing.T) {
	cases := []struct {
		country CountryCode
		tag     language.Tag
		want    string
	}{
		{"US", language.English, "United States"},
		{"DE", language.German, "Deutschland"},
		{"FR", language.French, "France"},
	}
	for _, tc := range cases {
		got, ok := CountryName(tc.country, tc.tag)
		if !ok || got != tc.want {
			t.Errorf("CountryName(%s, %s) = %q, %v; want %q", tc.country, tc.tag, got, ok, tc.want)
		}
	}
	if _, ok := CountryName("1", language.English); ok {
		t.Errorf("CountryName(1) should fail")
	}
}
