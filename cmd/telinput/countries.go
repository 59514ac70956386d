package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"telinput/internal/phone"
)

type callingCodePayload struct {
	CallingCode string   `json:"calling_code"`
	Countries   []string `json:"countries"`
}

type countryPayload struct {
	Country     string `json:"country"`
	CallingCode string `json:"calling_code"`
	Name        string `json:"name,omitempty"`
	Mask        string `json:"mask,omitempty"`
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List supported countries with calling codes and masks",
	Args:  cobra.NoArgs,
	RunE:  runCountries,
}

func init() {
	countriesCmd.Flags().String("calling-code", "", "only countries dialed with this code, e.g. 44 or +44")
	countriesCmd.Flags().String("lang", "", "language for country names (default from config)")
	countriesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	countriesCmd.Flags().Bool("codes", false, "list calling codes with the countries sharing each")
}

func runCountries(cmd *cobra.Command, args []string) error {
	code, err := cmd.Flags().GetString("calling-code")
	if err != nil {
		return fmt.Errorf("failed to get calling-code flag: %w", err)
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readFormat(formatFlag)
	if err != nil {
		return err
	}
	codes, err := cmd.Flags().GetBool("codes")
	if err != nil {
		return fmt.Errorf("failed to get codes flag: %w", err)
	}

	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if codes {
		rows := listCallingCodes(env.interp)
		if format == "json" {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		for _, r := range rows {
			fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", "+"+r.CallingCode, strings.Join(r.Countries, " "))
		}
		return nil
	}

	tag := env.cfg.LanguageTag()
	if lang != "" {
		if tag, err = language.Parse(lang); err != nil {
			return fmt.Errorf("invalid --lang: %w", err)
		}
	}

	rows := listCountries(env.interp, code, tag)
	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), rows)
	}
	renderCountries(cmd.OutOrStdout(), rows)
	return nil
}

// listCountries returns every supported country, or those of one calling
// code, in registry order.
func listCountries(in *phone.Interpreter, code string, tag language.Tag) []countryPayload {
	var countries []phone.CountryCode
	if code != "" {
		if code[0] == '+' {
			code = code[1:]
		}
		countries = in.CountriesForCallingCode(phone.CallingCode(code))
	} else {
		countries = in.Registry().Countries()
	}

	rows := make([]countryPayload, 0, len(countries))
	for _, c := range countries {
		cc, _ := in.CallingCodeOf(c)
		mask, _ := in.MaskFor(c)
		name, _ := phone.CountryName(c, tag)
		rows = append(rows, countryPayload{
			Country:     string(c),
			CallingCode: string(cc),
			Name:        name,
			Mask:        string(mask),
		})
	}
	return rows
}

// listCallingCodes groups the registry by calling code, in the order the
// codes first appear.
func listCallingCodes(in *phone.Interpreter) []callingCodePayload {
	reg := in.Registry()
	codes := reg.CallingCodes()
	rows := make([]callingCodePayload, len(codes))
	for i, code := range codes {
		rows[i] = callingCodePayload{
			CallingCode: string(code),
			Countries:   countryStrings(reg.CountriesForCallingCode(code)),
		}
	}
	return rows
}

func renderCountries(out io.Writer, rows []countryPayload) {
	nameWidth := 0
	for _, r := range rows {
		nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
	}
	nameWidth = min(nameWidth, 40)
	for _, r := range rows {
		name := runewidth.Truncate(r.Name, nameWidth, "...")
		fmt.Fprintf(out, "%s  %-5s %s  %s\n",
			r.Country, "+"+r.CallingCode, runewidth.FillRight(name, nameWidth), r.Mask)
	}
}
