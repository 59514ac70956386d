package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"telinput/internal/phone"
	"telinput/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write or inspect the on-disk country table",
}

var snapshotWriteCmd = &cobra.Command{
	Use:   "write [path]",
	Short: "Derive the country table and store it (default: user cache dir)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := snapshotPath(args)
		if err != nil {
			return err
		}
		env, cleanup, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		var snap *snapshot.Snapshot
		err = env.timer.Measure("snapshot", func() error {
			var err error
			if snap, err = snapshot.Build(env.interp, env.cfg.LanguageTag()); err != nil {
				return err
			}
			return snapshot.Write(path, snap)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d countries to %s\n", len(snap.Entries), path)
		return nil
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a stored country table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := snapshotPath(args)
		if err != nil {
			return err
		}
		snap, err := snapshot.Read(path)
		if err != nil {
			return err
		}
		country, err := cmd.Root().PersistentFlags().GetString("country")
		if err != nil {
			return fmt.Errorf("failed to get country flag: %w", err)
		}
		rows, err := snapshotRows(snap, country)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d countries)\n", path, snap.Language, len(rows))
		renderCountries(cmd.OutOrStdout(), rows)
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotWriteCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
}

// snapshotRows returns the stored entries, or only the entry of country
// when it is set.
func snapshotRows(snap *snapshot.Snapshot, country string) ([]countryPayload, error) {
	entries := snap.Entries
	if country != "" {
		c, ok := phone.NormalizeCountry(country)
		if !ok {
			return nil, fmt.Errorf("invalid country %q", country)
		}
		e, ok := snap.Lookup(c)
		if !ok {
			return nil, fmt.Errorf("country %s is not in the snapshot", c)
		}
		entries = []snapshot.Entry{e}
	}
	rows := make([]countryPayload, len(entries))
	for i, e := range entries {
		rows[i] = countryPayload{
			Country:     e.Country,
			CallingCode: fmt.Sprint(e.CallingCode),
			Name:        e.Name,
			Mask:        e.Mask,
		}
	}
	return rows, nil
}

func snapshotPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return snapshot.DefaultPath("telinput")
}
