package cmd

import (
	"github.com/spf13/cobra"

	"cobbler/internal/core"
)

var removeCmd = &cobra.Command{
	Use:     "remove FILE",
	Aliases: []string{"unnumber"},
	Short:   "Blank out sequence numbers in columns 1-6",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remove := func(e *core.Engine, text string, confirm core.ConfirmFunc) (core.Outcome, error) {
			return e.RemoveLineNumbers(text, confirm)
		}
		return runTransform(cmd, args[0], remove, "Removed line numbers from "+args[0]+".")
	},
}

func init() {
	transformFlags(removeCmd)
	rootCmd.AddCommand(removeCmd)
}
