package core

import (
	"errors"
	"fmt"
	"log/slog"

	"cobbler/internal/parser"
	"cobbler/internal/rewrite"
	"cobbler/internal/state"
	"cobbler/pkg/linestate"
)

var (
	// ErrCancelled is returned when the user declines to proceed.
	ErrCancelled = errors.New("operation cancelled")
	// ErrConfirmationRequired is returned when the document is
	// indeterminate and no way to ask the user was supplied.
	ErrConfirmationRequired = errors.New("line numbering could not be determined; confirmation required")
	// ErrNotNumbered is returned when removing numbers from a file that has none.
	ErrNotNumbered = errors.New("the file does not have line numbers to remove")
	// ErrInvalidIncrement is returned for increments outside the allowed range.
	ErrInvalidIncrement = errors.New("invalid line number increment")
)

const (
	AddWarning = "Cobbler was not able to fully determine if the current file has line numbers or not. " +
		"It is recommended to stop and save a copy of the file before proceeding. Cobbler will do " +
		"its best to add line numbers without creating any breaking changes, but carefully " +
		"examine the file after changes have been applied. Proceed with adding line numbers?"

	RemoveWarning = "Cobbler was not able to fully determine if the current file has line numbers or not. " +
		"It is recommended to stop and save a copy of the file before proceeding. Cobbler will do " +
		"its best to remove the line numbers without creating any breaking changes, but carefully " +
		"examine the file after changes have been applied. Proceed with removing line numbers?"
)

// ConfirmFunc asks the user whether to go ahead with a best-effort change.
type ConfirmFunc func(message string) (bool, error)

// Outcome is the result of an add or remove workflow.
type Outcome struct {
	State   linestate.LineState // classification before the change
	Text    string              // the new document
	Skipped int                 // lines left untouched by removal
	Message string              // informational text for the user, may be empty
}

// Engine runs the add/remove workflows over an injectable rewriter.
type Engine struct {
	Rewriter rewrite.LineRewriter
	Logger   *slog.Logger
}

// NewEngine returns an Engine using the platform line separator.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{Rewriter: rewrite.New(), Logger: logger}
}

// AddLineNumbers classifies text and renumbers every line. Indeterminate
// documents are only touched once confirm agrees.
func (e *Engine) AddLineNumbers(text string, increment int, confirm ConfirmFunc) (Outcome, error) {
	if !state.ValidIncrement(increment) {
		return Outcome{}, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidIncrement, increment, state.MinIncrement, state.MaxIncrement)
	}

	lines := parser.SplitLines(text)
	ls := parser.Classify(lines)
	e.Logger.Debug("adding line numbers", "increment", increment, "state", ls, "lines", len(lines))

	if ls == linestate.Indeterminate {
		if err := ask(confirm, AddWarning); err != nil {
			return Outcome{State: ls}, err
		}
	}

	return Outcome{
		State: ls,
		Text:  e.Rewriter.Number(lines, ls, increment),
	}, nil
}

// RemoveLineNumbers classifies text and blanks the sequence area of every
// numbered line.
func (e *Engine) RemoveLineNumbers(text string, confirm ConfirmFunc) (Outcome, error) {
	lines := parser.SplitLines(text)
	ls := parser.Classify(lines)
	e.Logger.Debug("removing line numbers", "state", ls, "lines", len(lines))

	switch ls {
	case linestate.NotNumbered:
		return Outcome{State: ls}, ErrNotNumbered
	case linestate.Indeterminate:
		if err := ask(confirm, RemoveWarning); err != nil {
			return Outcome{State: ls}, err
		}
	}

	result, skipped := e.Rewriter.Remove(lines)
	out := Outcome{State: ls, Text: result, Skipped: skipped}
	if skipped > 0 {
		out.Message = SkippedMessage(skipped)
	}
	return out, nil
}

// SkippedMessage describes how many lines removal left alone.
func SkippedMessage(skipped int) string {
	return fmt.Sprintf("%d lines were skipped in line number removal.", skipped)
}

func ask(confirm ConfirmFunc, message string) error {
	if confirm == nil {
		return ErrConfirmationRequired
	}
	ok, err := confirm(message)
	if err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// Yes is a ConfirmFunc that always agrees.
func Yes(string) (bool, error) { return true, nil }
