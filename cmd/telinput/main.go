package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"telinput/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "telinput",
	Short:         "Incremental phone number interpreter",
	Long:          `telinput guesses the country of a phone number while it is typed, derives its display mask and validates it`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// errNotValid makes the process exit with status 1 without printing an
// error; the verdict itself is already on stdout.
var errNotValid = errors.New("number is not valid")

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to telinput.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().String("country", "", "default country for nationally written numbers")
	rootCmd.PersistentFlags().String("trace", "", "trace output path (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 0, "ring buffer size for ring trace mode (0=default)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
}

// main sets the command version and executes the root command.
// Any error makes the process exit with status code 1.
func main() {
	rootCmd.Version = version.Pretty(version.Current().Version)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotValid) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
