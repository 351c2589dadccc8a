package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobbler/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Report whether files carry sequence numbers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("format")
		format, err := report.ParseFormat(name)
		if err != nil {
			return err
		}
		store, err := settingsStore()
		if err != nil {
			return err
		}

		entries := make([]report.Entry, 0, len(args))
		failed := 0
		for _, path := range args {
			e := report.Inspect(path)
			if e.Err != nil {
				failed++
			} else {
				remember(store, path)
			}
			logger.Debug("classified", "path", path, "state", e.Status())
			entries = append(entries, e)
		}

		if err := report.Render(cmd.OutOrStdout(), format, entries); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be read", failed, len(args))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("format", "f", string(report.FormatText), "output format: text|json|markdown|html")
	rootCmd.AddCommand(checkCmd)
}
