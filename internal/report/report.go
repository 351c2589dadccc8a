// Package report renders line-state classifications of one or more files.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"cobbler/internal/parser"
	"cobbler/pkg/linestate"
)

// Format selects a renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown, FormatHTML}

// ParseFormat matches name against Formats. "md" is accepted for Markdown.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q", name)
}

// Entry is the classification of a single file.
type Entry struct {
	Path  string
	State linestate.LineState
	Lines int
	Err   error
}

// Inspect reads and classifies path. Read failures are kept in Entry.Err.
func Inspect(path string) Entry {
	text, err := parser.ReadSourceFile(path)
	if err != nil {
		return Entry{Path: path, Err: err}
	}
	lines := parser.SplitLines(text)
	return Entry{Path: path, State: parser.Classify(lines), Lines: len(lines)}
}

// Status is the state name, or "ERROR" when the file could not be read.
func (e Entry) Status() string {
	if e.Err != nil {
		return "ERROR"
	}
	return e.State.String()
}

// Render writes entries to w in format f.
func Render(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatText:
		return renderText(w, entries)
	case FormatJSON:
		return renderJSON(w, entries)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(entries))
		return err
	case FormatHTML:
		return renderHTML(w, entries)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

func renderText(w io.Writer, entries []Entry) error {
	width := runewidth.StringWidth("FILE")
	for _, e := range entries {
		width = max(width, runewidth.StringWidth(e.Path))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %-13s  %s\n", runewidth.FillRight("FILE", width), "STATE", "LINES")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s  %-13s  ", runewidth.FillRight(e.Path, width), e.Status())
		if e.Err != nil {
			sb.WriteString(e.Err.Error())
		} else {
			fmt.Fprintf(&sb, "%d", e.Lines)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

type jsonEntry struct {
	Path  string               `json:"path"`
	State *linestate.LineState `json:"state,omitempty"`
	Lines int                  `json:"lines"`
	Error string               `json:"error,omitempty"`
}

func renderJSON(w io.Writer, entries []Entry) error {
	out := make([]jsonEntry, 0, len(entries))
	for _, e := range entries {
		je := jsonEntry{Path: e.Path, Lines: e.Lines}
		if e.Err != nil {
			je.Error = e.Err.Error()
		} else {
			st := e.State
			je.State = &st
		}
		out = append(out, je)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Markdown renders entries as a GitHub-flavoured Markdown table.
func Markdown(entries []Entry) string {
	var sb strings.Builder
	sb.WriteString("# Line number report\n\n")
	sb.WriteString("| File | State | Lines |\n")
	sb.WriteString("| --- | --- | ---: |\n")
	for _, e := range entries {
		lines := fmt.Sprint(e.Lines)
		if e.Err != nil {
			lines = e.Err.Error()
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", escapeCell(e.Path), e.Status(), escapeCell(lines))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderHTML(w io.Writer, entries []Entry) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(entries)), &buf); err != nil {
		return fmt.Errorf("converting report to HTML: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
