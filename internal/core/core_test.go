package core

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cobbler/internal/rewrite"
	"cobbler/pkg/linestate"
)

const blankArea = "      "

func newTestEngine() *Engine {
	e := NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.Rewriter = rewrite.Rewriter{Separator: "\n"}
	return e
}

// recordingConfirmer answers with a fixed value and remembers the prompt.
type recordingConfirmer struct {
	answer bool
	err    error
	asked  []string
}

func (r *recordingConfirmer) confirm(message string) (bool, error) {
	r.asked = append(r.asked, message)
	return r.answer, r.err
}

func TestEngine_AddLineNumbers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		increment int
		answer    bool
		wantState linestate.LineState
		wantText  string
		wantAsked bool
		wantErr   error
	}{
		{
			name:      "not numbered file",
			text:      blankArea + " IDENTIFICATION DIVISION.\n" + blankArea + " STOP RUN.\n",
			increment: 10,
			wantState: linestate.NotNumbered,
			wantText:  "000010 IDENTIFICATION DIVISION.\n000020 STOP RUN.\n",
		},
		{
			name:      "numbered file is renumbered",
			text:      "000010 IDENTIFICATION DIVISION.\n000020 STOP RUN.\n",
			increment: 20,
			wantState: linestate.Numbered,
			wantText:  "000020 IDENTIFICATION DIVISION.\n000040 STOP RUN.\n",
		},
		{
			name:      "indeterminate file confirmed",
			text:      "  * comment\n" + blankArea + " STOP RUN.\n",
			increment: 20,
			answer:    true,
			wantState: linestate.Indeterminate,
			wantText:  "000020* comment\n000040 STOP RUN.\n",
			wantAsked: true,
		},
		{
			name:      "indeterminate file declined",
			text:      "  * comment\n" + blankArea + " STOP RUN.\n",
			increment: 20,
			answer:    false,
			wantState: linestate.Indeterminate,
			wantAsked: true,
			wantErr:   ErrCancelled,
		},
		{
			name:      "increment out of range",
			text:      blankArea + " STOP RUN.\n",
			increment: 0,
			wantErr:   ErrInvalidIncrement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &recordingConfirmer{answer: tt.answer}
			got, err := newTestEngine().AddLineNumbers(tt.text, tt.increment, rc.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddLineNumbers() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got.Text != tt.wantText {
				t.Errorf("AddLineNumbers() text = %q, want %q", got.Text, tt.wantText)
			}
			if got.State != tt.wantState {
				t.Errorf("AddLineNumbers() state = %v, want %v", got.State, tt.wantState)
			}
			if (len(rc.asked) > 0) != tt.wantAsked {
				t.Errorf("confirmation asked = %v, want %v", rc.asked, tt.wantAsked)
			}
			if tt.wantAsked && rc.asked[0] != AddWarning {
				t.Errorf("unexpected prompt %q", rc.asked[0])
			}
		})
	}
}

func TestEngine_AddLineNumbers_NoConfirmer(t *testing.T) {
	_, err := newTestEngine().AddLineNumbers("\tSTOP RUN.\n", 10, nil)
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Errorf("expected ErrConfirmationRequired, got %v", err)
	}
}

func TestEngine_AddLineNumbers_ConfirmError(t *testing.T) {
	boom := errors.New("no terminal")
	rc := &recordingConfirmer{err: boom}
	_, err := newTestEngine().AddLineNumbers("\tSTOP RUN.\n", 10, rc.confirm)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped confirm error, got %v", err)
	}
}

func TestEngine_RemoveLineNumbers(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		confirm     ConfirmFunc
		wantText    string
		wantSkipped int
		wantMessage string
		wantErr     error
	}{
		{
			name:     "numbered file",
			text:     "000010 IDENTIFICATION DIVISION.\n000020 STOP RUN.\n",
			wantText: blankArea + " IDENTIFICATION DIVISION.\n" + blankArea + " STOP RUN.\n",
		},
		{
			name:    "not numbered file",
			text:    blankArea + " IDENTIFICATION DIVISION.\n",
			wantErr: ErrNotNumbered,
		},
		{
			name: "indeterminate file with skips",
			text: "000010* Auto generated hello world file\n" +
				blankArea + " IDENTIFICATION DIVISION.\n" +
				"0H0030 PROGRAM-ID. HELLO-WORLD.\n" +
				"AUTHOR. jhorvath\n",
			confirm: Yes,
			wantText: blankArea + "* Auto generated hello world file\n" +
				blankArea + " IDENTIFICATION DIVISION.\n" +
				"0H0030 PROGRAM-ID. HELLO-WORLD.\n" +
				"AUTHOR. jhorvath\n",
			wantSkipped: 3,
			wantMessage: "3 lines were skipped in line number removal.",
		},
		{
			name:    "indeterminate file without confirmer",
			text:    "000010 A.\n" + blankArea + " B.\n",
			wantErr: ErrConfirmationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestEngine().RemoveLineNumbers(tt.text, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RemoveLineNumbers() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", got.Skipped, tt.wantSkipped)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestEngine_DefaultSeparator(t *testing.T) {
	e := NewEngine(nil)
	got, err := e.AddLineNumbers(blankArea+" STOP RUN.", 10, nil)
	if err != nil {
		t.Fatalf("AddLineNumbers() error = %v", err)
	}
	if !strings.HasSuffix(got.Text, rewrite.LineSeparator) {
		t.Errorf("expected platform separator at end of %q", got.Text)
	}
}
