package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"telinput/internal/session"
)

type keyOp uint8

const (
	keyType keyOp = iota
	keyBackspace
	keyClear
)

type keystroke struct {
	op keyOp
	r  rune
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <keys>",
	Short: "Type keys into an input session and show the state after each",
	Long: `Simulate feeds keys one at a time into an input session, as an input
field would. "<bs>" is a backspace and "<clear>" empties the field; every
other character is typed as is.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sess := session.New(env.ctx, env.interp, sessionOptions(env))
	idx := env.timer.Begin("simulate")
	err = simulate(cmd.OutOrStdout(), sess, parseKeys(args[0]))
	env.timer.End(idx, "")
	return err
}

func sessionOptions(env *cliEnv) session.Options {
	return session.Options{
		DefaultCountry: env.country,
		BufferSize:     env.cfg.Input.BufferSize,
		EmptyDigit:     env.cfg.EmptyDigit(),
	}
}

// parseKeys splits keys into keystrokes.
func parseKeys(keys string) []keystroke {
	var out []keystroke
	for keys != "" {
		switch {
		case strings.HasPrefix(keys, "<bs>"):
			out = append(out, keystroke{op: keyBackspace})
			keys = keys[len("<bs>"):]
		case strings.HasPrefix(keys, "<clear>"):
			out = append(out, keystroke{op: keyClear})
			keys = keys[len("<clear>"):]
		default:
			r := []rune(keys)[0]
			out = append(out, keystroke{op: keyType, r: r})
			keys = keys[len(string(r)):]
		}
	}
	return out
}

func simulate(out io.Writer, sess *session.Session, keys []keystroke) error {
	for _, k := range keys {
		var (
			st    session.State
			err   error
			label string
		)
		switch k.op {
		case keyBackspace:
			label = "<bs>"
			st, err = sess.Backspace()
		case keyClear:
			label = "<clear>"
			sess.Reset()
			st = sess.State()
		default:
			label = string(k.r)
			st, err = sess.Type(k.r)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-7s %-22q %-22s %-3s %s\n",
			label, st.Raw, st.Display, st.Country, verdictLabel(st.Verdict))
	}
	return nil
}
