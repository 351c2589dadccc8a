package cmd

import (
	"github.com/spf13/cobra"

	"cobbler/internal/highlight"
	"cobbler/internal/parser"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a source file with syntax highlighting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settingsStore()
		if err != nil {
			return err
		}
		s, err := store.Load()
		if err != nil {
			return err
		}
		invisibles := s.ShowInvisibles
		if cmd.Flags().Changed("invisibles") {
			invisibles, _ = cmd.Flags().GetBool("invisibles")
		}

		text, err := parser.ReadSourceFile(args[0])
		if err != nil {
			return err
		}
		remember(store, args[0])

		h := highlight.New(s.Theme, isTerminal(cmd.OutOrStdout()), invisibles)
		return h.Render(cmd.OutOrStdout(), text)
	},
}

func init() {
	showCmd.Flags().Bool("invisibles", false, "mark spaces, tabs and line ends (default from settings)")
	rootCmd.AddCommand(showCmd)
}
