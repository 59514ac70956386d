package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"telinput/internal/batch"
	"telinput/internal/phone"
)

type verdictPayload struct {
	Line    int    `json:"line,omitempty"`
	Number  string `json:"number"`
	Country string `json:"country"`
	Verdict string `json:"verdict"`
	Message string `json:"message,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [number]",
	Short: "Validate a number (or a file of numbers) against a country",
	Long: `Validate classifies numbers as VALID, INVALID, ANOTHER_COUNTRY, TOO_SHORT
or a structural error kind. With --file, each line holds "number[,country]";
lines without a country use --country. The exit status is 1 unless every
number is VALID.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("file", "", "read numbers from a file (- for stdin)")
	validateCmd.Flags().Int("jobs", 0, "max parallel workers for --file (0=config or auto)")
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := readFormat(formatFlag)
	if err != nil {
		return err
	}
	if (file == "") == (len(args) == 0) {
		return fmt.Errorf("give either a number or --file")
	}

	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	var items []batch.Item
	if file != "" {
		items, err = readItems(file, env.country)
		if err != nil {
			return err
		}
	} else {
		if env.country == "" {
			return fmt.Errorf("--country is required")
		}
		items = []batch.Item{{Number: args[0], Country: env.country}}
	}
	if jobs == 0 {
		jobs = env.cfg.Batch.Jobs
	}

	var results []batch.Result
	err = env.timer.Measure("validate", func() error {
		var err error
		results, err = batch.Validate(env.ctx, env.interp, items, jobs)
		return err
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		if err := writeJSON(out, verdictPayloads(results)); err != nil {
			return err
		}
	} else {
		renderVerdicts(out, results, file != "")
	}

	if summary := batch.Summarize(results); summary.Valid() != summary.Total {
		return errNotValid
	}
	return nil
}

func readItems(path string, country phone.CountryCode) ([]batch.Item, error) {
	if path == "-" {
		return batch.ReadItems(os.Stdin, country)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return batch.ReadItems(f, country)
}

func verdictPayloads(results []batch.Result) []verdictPayload {
	out := make([]verdictPayload, len(results))
	for i, r := range results {
		out[i] = verdictPayload{
			Line:    r.Line,
			Number:  r.Number,
			Country: string(r.Country),
			Verdict: string(r.Verdict),
			Message: r.Verdict.Message(),
		}
	}
	return out
}

func renderVerdicts(out io.Writer, results []batch.Result, withSummary bool) {
	if len(results) == 1 && !withSummary {
		fmt.Fprintln(out, verdictLabel(results[0].Verdict))
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Line, r.Number, r.Country, verdictLabel(r.Verdict))
	}
	tw.Flush() //nolint:errcheck
	if withSummary {
		s := batch.Summarize(results)
		fmt.Fprintf(out, "%d numbers, %d valid\n", s.Total, s.Valid())
	}
}
