package phone

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryName returns the display name of country in the language of tag,
// falling back to English when there is no data for tag.
func CountryName(country CountryCode, tag language.Tag) (string, bool) {
	region, err := language.ParseRegion(string(country))
	if err != nil {
		return "", false
	}
	namer := display.Regions(tag)
	if namer == nil {
		namer = display.Regions(language.English)
	}
	name := namer.Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}
