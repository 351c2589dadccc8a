package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cobbler/internal/core"
	"cobbler/internal/tui"
)

var (
	configPath string
	verbose    bool
	logger     = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cobbler",
	Short: "Add, remove and inspect sequence numbers in fixed-format COBOL source",
	Long: `cobbler classifies COBOL source files by whether columns 1-6 hold sequence
numbers, and adds, renumbers or removes them without disturbing the code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), verbose)
	},
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default is $XDG_CONFIG_HOME/cobbler/settings.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func settingsStore() (core.SettingsStore, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = core.DefaultSettingsPath(); err != nil {
			return nil, err
		}
	}
	logger.Debug("using settings file", "path", path)
	return core.NewFileSettingsStore(path), nil
}

// remember records path as recently used. Failures only get logged.
func remember(store core.SettingsStore, path string) {
	if err := core.RememberFile(store, path); err != nil {
		logger.Warn("could not update recent files", "path", path, "err", err)
	}
}

// isTerminal is swapped out in tests.
var isTerminal = func(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// confirmer asks on the terminal when there is one. The prompt is drawn on
// stderr so stdout stays clean for --stdout. Without a terminal and
// without --yes there is nobody to ask.
func confirmer(cmd *cobra.Command, yes bool) core.ConfirmFunc {
	if yes {
		return core.Yes
	}
	if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.ErrOrStderr()) {
		return tui.Confirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
	}
	return nil
}

// explain turns workflow errors into command results. A declined
// confirmation is reported but is not a failure.
func explain(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, core.ErrCancelled):
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, the file was not changed.")
		return nil
	case errors.Is(err, core.ErrConfirmationRequired):
		return fmt.Errorf("%w (re-run with --yes to proceed)", err)
	}
	return err
}
