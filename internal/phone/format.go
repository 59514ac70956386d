package phone

// FormatNumber renders raw as "+<calling code> <filled mask>". Missing
// digits show as empty. Input that cannot be interpreted is returned
// unchanged.
func (in *Interpreter) FormatNumber(raw string, empty rune) string {
	parsed, ok := in.ParseNumber(raw)
	if !ok {
		return raw
	}
	country := parsed.EffectiveCountry()
	mask, ok := in.MaskFor(country)
	if !ok {
		return raw
	}
	code, ok := in.registry.CallingCodeOf(country)
	if !ok {
		return raw
	}
	return "+" + string(code) + " " + mask.Fill(parsed.NationalNumber, empty)
}
