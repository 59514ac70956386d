package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"telinput/internal/phone"
	"telinput/internal/session"
	"telinput/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a phone number interactively",
	Long: `Edit opens an input field that guesses the country, shows the mask and
validates the number while it is typed. Without a terminal, every line of
stdin replaces the field text and the state is printed.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("ui", "auto", "interactive field (auto|on|off)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sess := session.New(env.ctx, env.interp, sessionOptions(env))
	if !shouldUseTUI(mode) {
		return editLines(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
	}

	tag := env.cfg.LanguageTag()
	st, accepted, err := ui.RunEdit(env.ctx, sess, ui.EditOptions{
		CountryName: func(c phone.CountryCode) string {
			name, _ := phone.CountryName(c, tag)
			return name
		},
	})
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), st.Display)
	if !st.Verdict.OK() {
		fmt.Fprintln(os.Stderr, verdictLabel(st.Verdict))
		return errNotValid
	}
	return nil
}

// editLines is the non-interactive edit loop.
func editLines(in io.Reader, out io.Writer, sess *session.Session) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		st, err := sess.SetText(sc.Text())
		if err != nil {
			return err
		}
		writeState(out, st)
	}
	return sc.Err()
}

func writeState(out io.Writer, st session.State) {
	writeField(out, "raw", fmt.Sprintf("%q", st.Raw))
	if st.Display != "" {
		writeField(out, "display", st.Display)
	}
	writeField(out, "country", valueOr(string(st.Country), "-"))
	if len(st.Parsed.PossibleCountries) > 1 {
		writeField(out, "possible", joinCountries(st.Parsed.PossibleCountries))
	}
	writeField(out, "verdict", verdictLabel(st.Verdict))
	fmt.Fprintln(out)
}
