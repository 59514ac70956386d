package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"telinput/internal/version"
)

type versionOptions struct {
	format      string
	showHash    bool
	showMessage bool
	showDate    bool
}

type versionPayload struct {
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Tagline    string `json:"tagline"`
	GitCommit  string `json:"git_commit,omitempty"`
	GitMessage string `json:"git_message,omitempty"`
	BuildDate  string `json:"build_date,omitempty"`
}

const versionTagline = "every digit counts"

var (
	versionFormat      string
	versionShowHash    bool
	versionShowMessage bool
	versionShowDate    bool
	versionShowFull    bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowMessage, "message", false, "include git commit message")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show telinput build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := readFormat(versionFormat)
		if err != nil {
			return err
		}
		opts := versionOptions{
			format:      format,
			showHash:    versionShowHash || versionShowFull,
			showMessage: versionShowMessage || versionShowFull,
			showDate:    versionShowDate || versionShowFull,
		}

		info := version.Current()
		if opts.format == "json" {
			return writeJSON(cmd.OutOrStdout(), versionJSON(info, opts))
		}
		renderVersionPretty(cmd.OutOrStdout(), info, opts)
		return nil
	},
}

func renderVersionPretty(out io.Writer, info version.Info, opts versionOptions) {
	fmt.Fprintf(out, "telinput %s: %s\n", version.Pretty(info.Version), versionTagline)
	if opts.showHash {
		fmt.Fprintf(out, "commit: %s\n", valueOr(info.GitCommit, "unknown"))
	}
	if opts.showMessage {
		fmt.Fprintf(out, "message: %s\n", valueOr(info.GitMessage, "unknown"))
	}
	if opts.showDate {
		fmt.Fprintf(out, "built:  %s\n", valueOr(info.BuildDate, "unknown"))
	}
	if !opts.showHash && !opts.showMessage && !opts.showDate {
		fmt.Fprintln(out, "set --hash, --message, --date, or --full for more build trivia")
	}
}

func versionJSON(info version.Info, opts versionOptions) versionPayload {
	payload := versionPayload{
		Tool:    "telinput",
		Version: info.Version,
		Tagline: versionTagline,
	}
	if opts.showHash {
		payload.GitCommit = valueOr(info.GitCommit, "unknown")
	}
	if opts.showMessage {
		payload.GitMessage = valueOr(info.GitMessage, "unknown")
	}
	if opts.showDate {
		payload.BuildDate = valueOr(info.BuildDate, "unknown")
	}
	return payload
}
