package cmd

import (
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"cobbler/internal/core"
	"cobbler/internal/tui"
)

// tuiCmd launches the cobbler interactive TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui [FILE...]",
	Short: "Launch the cobbler interactive TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		s, err := store.Load()
		if err != nil {
			return err
		}

		var files []string
		for _, f := range append(args, s.RecentFiles...) {
			if abs, err := filepath.Abs(f); err == nil {
				f = abs
			}
			if !slices.Contains(files, f) {
				files = append(files, f)
			}
		}
		return tui.Run(files, core.NewEngine(logger), store)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
