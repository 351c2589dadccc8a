package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cobbler/internal/parser"
	"cobbler/pkg/linestate"
)

var sample = []Entry{
	{Path: "a.cob", State: linestate.Numbered, Lines: 12},
	{Path: "b|c.cob", State: linestate.NotNumbered, Lines: 3},
	{Path: "gone.cob", Err: errors.New("file not found")},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" md ", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.cob")
	if err := os.WriteFile(path, []byte("000010 A.\n000020 B.\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e := Inspect(path)
	if e.Err != nil || e.State != linestate.Numbered || e.Lines != 2 {
		t.Errorf("Inspect() = %+v", e)
	}

	missing := Inspect(filepath.Join(dir, "missing.cob"))
	if !errors.Is(missing.Err, parser.ErrFileNotFound) {
		t.Errorf("Inspect(missing).Err = %v, want ErrFileNotFound", missing.Err)
	}
	if missing.Status() != "ERROR" {
		t.Errorf("Status() = %q, want ERROR", missing.Status())
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatText, sample); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"FILE      STATE          LINES",
		"a.cob     NUMBERED       12",
		"b|c.cob   NOT_NUMBERED   3",
		"gone.cob  ERROR          file not found",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, sample); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0]["state"] != "NUMBERED" || got[0]["lines"] != float64(12) {
		t.Errorf("first entry = %v", got[0])
	}
	if _, ok := got[2]["state"]; ok {
		t.Errorf("failed entry should not carry a state: %v", got[2])
	}
	if got[2]["error"] != "file not found" {
		t.Errorf("failed entry error = %v", got[2]["error"])
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sample)
	for _, want := range []string{
		"| File | State | Lines |",
		"| a.cob | NUMBERED | 12 |",
		`| b\|c.cob | NOT_NUMBERED | 3 |`,
		"| gone.cob | ERROR | file not found |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatHTML, sample); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<h1>Line number report</h1>", "<table>", "<td>a.cob</td>", "<td>NOT_NUMBERED</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML missing %q in:\n%s", want, out)
		}
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, Format("pdf"), sample); err == nil {
		t.Error("expected error for unknown format")
	}
}
