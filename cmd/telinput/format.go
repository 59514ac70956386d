package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <raw>",
	Short: "Render input as +<code> followed by the filled country mask",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().String("empty-digit", "", "character shown for missing digits (default from config, '#')")
}

func runFormat(cmd *cobra.Command, args []string) error {
	env, cleanup, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	empty := env.cfg.EmptyDigit()
	flag, err := cmd.Flags().GetString("empty-digit")
	if err != nil {
		return fmt.Errorf("failed to get empty-digit flag: %w", err)
	}
	if flag != "" {
		if utf8.RuneCountInString(flag) != 1 {
			return fmt.Errorf("--empty-digit must be a single character, got %q", flag)
		}
		empty, _ = utf8.DecodeRuneInString(flag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), env.interp.FormatNumber(args[0], empty))
	return nil
}
