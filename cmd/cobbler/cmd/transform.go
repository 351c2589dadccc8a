package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"cobbler/internal/core"
	"cobbler/internal/parser"
	"cobbler/internal/rewrite"
)

// transformFlags are shared by number and remove.
func transformFlags(c *cobra.Command) {
	c.Flags().BoolP("yes", "y", false, "proceed without asking when line numbering is unclear")
	c.Flags().Bool("stdout", false, "print the result instead of writing the file")
	c.Flags().Bool("copy", false, "copy the result to the clipboard")
}

type transform func(engine *core.Engine, text string, confirm core.ConfirmFunc) (core.Outcome, error)

// runTransform reads path, applies fn and delivers the result where the
// flags say. done is printed after the file has been written.
func runTransform(cmd *cobra.Command, path string, fn transform, done string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	toClipboard, _ := cmd.Flags().GetBool("copy")

	store, err := settingsStore()
	if err != nil {
		return err
	}
	text, err := parser.ReadSourceFile(path)
	if err != nil {
		return err
	}

	out, err := fn(core.NewEngine(logger), text, confirmer(cmd, yes))
	if err != nil {
		return explain(cmd, err)
	}
	logger.Debug("transformed file", "path", path, "state", out.State, "skipped", out.Skipped)
	remember(store, path)

	if toClipboard {
		if err := clipboard.WriteAll(out.Text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	if toStdout {
		fmt.Fprint(cmd.OutOrStdout(), out.Text)
		if out.Message != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), out.Message)
		}
		return nil
	}

	if err := rewrite.WriteFile(path, out.Text); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), done)
	if out.Message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out.Message)
	}
	return nil
}
