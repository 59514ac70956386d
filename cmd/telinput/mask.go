package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var maskCmd = &cobra.Command{
	Use:   "mask <country>",
	Short: "Print the display mask of a country",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, cleanup, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		country, err := env.supportedCountry(args[0])
		if err != nil {
			return err
		}
		mask, ok := env.interp.MaskFor(country)
		if !ok {
			return fmt.Errorf("no mask for %s: no example number", country)
		}
		fmt.Fprintln(cmd.OutOrStdout(), mask)
		return nil
	},
}
