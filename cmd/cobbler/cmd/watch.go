package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cobbler/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-check a file's line numbering every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := watcher.New(args[0])
		if err != nil {
			return err
		}
		w.Logger = logger

		out := cmd.OutOrStdout()
		first, err := w.Check()
		if err != nil {
			return err
		}
		printEvent(out, first)

		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-w.Events():
				if !ok {
					return nil
				}
				printEvent(out, ev)
			case err, ok := <-w.Errors():
				if !ok {
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "watch error:", err)
			}
		}
	},
}

func printEvent(w io.Writer, ev watcher.Event) {
	fmt.Fprintf(w, "%s  %s  %s (%d lines)\n", ev.At.Format("15:04:05"), ev.Path, ev.State, ev.Lines)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
