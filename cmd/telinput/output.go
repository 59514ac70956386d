package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"telinput/internal/phone"
)

var (
	validColor = color.New(color.FgGreen, color.Bold)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.Faint)
)

const labelWidth = 10

// verdictLabel renders a verdict with its message, colored by severity.
func verdictLabel(v phone.Verdict) string {
	switch {
	case v == "":
		return labelColor.Sprint("-")
	case v.OK():
		return validColor.Sprint(string(v))
	case v.Structural():
		return errorColor.Sprintf("%s: %s", v, v.Message())
	default:
		return warnColor.Sprintf("%s: %s", v, v.Message())
	}
}

func writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelColor.Sprint(runewidth.FillRight(label, labelWidth)), value)
}

func joinCountries(cs []phone.CountryCode) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

func countryStrings(cs []phone.CountryCode) []string {
	if len(cs) == 0 {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readFormat(value string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(value)); f {
	case "", "pretty":
		return "pretty", nil
	case "json":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (must be pretty or json)", value)
	}
}
