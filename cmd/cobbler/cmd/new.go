package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"cobbler/internal/clock"
	"cobbler/internal/rewrite"
	"cobbler/internal/template"
)

var newCmd = &cobra.Command{
	Use:   "new [FILE]",
	Short: "Write a hello world COBOL program",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := template.DocumentName
		if len(args) == 1 {
			path = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		store, err := settingsStore()
		if err != nil {
			return err
		}
		text := template.Generate(cmd.Context(), clock.RealClock{}, rewrite.LineSeparator)
		if err := rewrite.WriteFile(path, text); err != nil {
			return err
		}
		remember(store, path)
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s.\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().Bool("force", false, "overwrite an existing file")
	rootCmd.AddCommand(newCmd)
}
