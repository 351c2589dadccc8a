package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cobbler/internal/core"
)

var numberCmd = &cobra.Command{
	Use:   "number FILE",
	Short: "Add or renumber sequence numbers in columns 1-6",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumber,
}

func init() {
	numberCmd.Flags().IntP("increment", "i", 0, "step between line numbers, 1-100 (default from settings)")
	transformFlags(numberCmd)
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, args []string) error {
	increment, _ := cmd.Flags().GetInt("increment")
	if !cmd.Flags().Changed("increment") {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		s, err := store.Load()
		if err != nil {
			return err
		}
		increment = s.Increment
	}

	add := func(e *core.Engine, text string, confirm core.ConfirmFunc) (core.Outcome, error) {
		return e.AddLineNumbers(text, increment, confirm)
	}
	return runTransform(cmd, args[0], add, fmt.Sprintf("Added line numbers to %s (increment %d).", args[0], increment))
}
