package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"telinput/internal/phone"
)

type parsePayload struct {
	Raw               string   `json:"raw"`
	Absent            bool     `json:"absent,omitempty"`
	Country           string   `json:"country,omitempty"`
	PossibleCountries []string `json:"possible_countries,omitempty"`
	CallingCode       string   `json:"calling_code,omitempty"`
	NationalNumber    string   `json:"national_number,omitempty"`
	Valid             bool     `json:"valid"`
	Mask              string   `json:"mask,omitempty"`
	Display           string   `json:"display,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <raw>",
	Short: "Interpret partial or complete phone input",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readFormat(formatFlag)
	if err != nil {
		return err
	}

	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var payload parsePayload
	idx := env.timer.Begin("parse")
	payload = buildParsePayload(env.interp, args[0], env.cfg.EmptyDigit())
	env.timer.End(idx, "")

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), payload)
	}
	renderParsePretty(cmd.OutOrStdout(), payload)
	return nil
}

func buildParsePayload(in *phone.Interpreter, raw string, empty rune) parsePayload {
	p, ok := in.ParseNumber(raw)
	if !ok {
		return parsePayload{Raw: raw, Absent: true}
	}
	country := p.EffectiveCountry()
	mask, _ := in.MaskFor(country)
	return parsePayload{
		Raw:               raw,
		Country:           string(p.Country),
		PossibleCountries: countryStrings(p.PossibleCountries),
		CallingCode:       string(p.CallingCode),
		NationalNumber:    p.NationalNumber,
		Valid:             p.Valid,
		Mask:              string(mask),
		Display:           in.FormatNumber(raw, empty),
	}
}

func renderParsePretty(out io.Writer, p parsePayload) {
	if p.Absent {
		fmt.Fprintf(out, "%q: not enough input yet\n", p.Raw)
		return
	}
	writeField(out, "country", valueOr(p.Country, "ambiguous"))
	if len(p.PossibleCountries) > 0 {
		writeField(out, "possible", strings.Join(p.PossibleCountries, " "))
	}
	if p.CallingCode != "" {
		writeField(out, "code", "+"+p.CallingCode)
	}
	if p.NationalNumber != "" {
		writeField(out, "national", p.NationalNumber)
	}
	writeField(out, "valid", strconv.FormatBool(p.Valid))
	if p.Mask != "" {
		writeField(out, "mask", p.Mask)
	}
	if p.Display != "" {
		writeField(out, "display", p.Display)
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
