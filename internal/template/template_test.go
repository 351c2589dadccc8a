package template

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cobbler/internal/clock"
	"cobbler/internal/gitutil"
	"cobbler/internal/parser"
	"cobbler/pkg/linestate"
)

var written = time.Date(2024, 7, 4, 9, 30, 0, 0, time.UTC)

func TestHelloWorld(t *testing.T) {
	got := HelloWorld("jhorvath", written, "\n")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	tests := []struct {
		index int
		want  string
	}{
		{0, "      * Auto generated hello world file "},
		{1, "       IDENTIFICATION DIVISION. "},
		{3, "       AUTHOR. jhorvath"},
		{4, "       DATE-WRITTEN. 07/04/2024"},
		{8, ""},
		{9, `       01 MyName PIC X(30) VALUE "jhorvath.".`},
		{13, "       STOP RUN. "},
	}
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d: %q", len(lines), lines)
	}
	for _, tt := range tests {
		if lines[tt.index] != tt.want {
			t.Errorf("line %d = %q, want %q", tt.index, lines[tt.index], tt.want)
		}
	}
}

func TestHelloWorld_IsNotNumbered(t *testing.T) {
	for _, sep := range []string{"\n", "\r\n"} {
		text := HelloWorld("someone", written, sep)
		if !strings.HasSuffix(text, sep) {
			t.Errorf("document does not end with %q", sep)
		}
		if got := parser.ClassifyText(text); got != linestate.NotNumbered {
			t.Errorf("ClassifyText() with sep %q = %v, want NOT_NUMBERED", sep, got)
		}
	}
}

type failingRunner struct{}

func (failingRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return nil, errors.New("git unavailable")
}

type nameRunner string

func (n nameRunner) CombinedOutput(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return []byte(n), nil
}

func TestGenerate(t *testing.T) {
	gitutil.SetRunner(nameRunner("Grace Hopper\n"))
	defer gitutil.SetRunner(gitutil.DefaultRunner{})

	got := Generate(context.Background(), clock.NewMockClock(written), "\n")
	if !strings.Contains(got, "AUTHOR. Grace Hopper\n") {
		t.Errorf("author missing from %q", got)
	}
	if !strings.Contains(got, "DATE-WRITTEN. 07/04/2024\n") {
		t.Errorf("date missing from %q", got)
	}
}

func TestGenerate_GitUnavailable(t *testing.T) {
	gitutil.SetRunner(failingRunner{})
	defer gitutil.SetRunner(gitutil.DefaultRunner{})

	// falls back to the OS account or a blank author, never fails
	got := Generate(context.Background(), clock.NewMockClock(written), "\n")
	if !strings.HasPrefix(got, "      * Auto generated") {
		t.Errorf("unexpected document %q", got)
	}
}
