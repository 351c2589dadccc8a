package rewrite

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"cobbler/internal/parser"
	"cobbler/pkg/linestate"
)

// LineSeparator is written after every output line, including the last.
var LineSeparator = platformSeparator()

func platformSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// LineRewriter rewrites the sequence-number area of a whole document.
type LineRewriter interface {
	// Number writes a new sequence number into columns 1-6 of every line.
	// The number for the line at index i is (i+1)*increment.
	Number(lines []string, state linestate.LineState, increment int) string

	// Remove blanks columns 1-6 of every line that starts with six digits
	// and reports how many lines were left untouched.
	Remove(lines []string) (string, int)
}

// Rewriter implements LineRewriter. The zero value writes lines with no
// separator; use New for the platform default.
type Rewriter struct {
	Separator string
}

// New returns a Rewriter that ends lines with LineSeparator.
func New() Rewriter {
	return Rewriter{Separator: LineSeparator}
}

// Number renumbers lines using the strict policy for Numbered and NotNumbered
// documents and the heuristic policy for Indeterminate ones.
func Number(lines []string, state linestate.LineState, increment int) string {
	return New().Number(lines, state, increment)
}

// Remove strips sequence numbers using the platform line separator.
func Remove(lines []string) (string, int) {
	return New().Remove(lines)
}

func (rw Rewriter) Number(lines []string, state linestate.LineState, increment int) string {
	renumber := strictLine
	if state == linestate.Indeterminate {
		renumber = heuristicLine
	}

	out := newLineWriter(rw.Separator, len(lines))
	for i, line := range lines {
		out.WriteLine(renumber(line, sequenceNumber(i, increment)))
	}
	return out.String()
}

func (rw Rewriter) Remove(lines []string) (string, int) {
	blank := strings.Repeat(" ", parser.SequenceColumns)
	skipped := 0

	out := newLineWriter(rw.Separator, len(lines))
	for _, line := range lines {
		if !parser.HasSequenceNumber(line) {
			skipped++
			out.WriteLine(line)
			continue
		}
		out.WriteLine(blank + afterSequenceArea(line))
	}
	return out.String(), skipped
}

// sequenceNumber formats the number for the zero-based line index. Values
// above 999999 are wider than the sequence area; that is accepted.
func sequenceNumber(index, increment int) string {
	return fmt.Sprintf("%0*d", parser.SequenceColumns, (index+1)*increment)
}

// strictLine overwrites columns 1-6 unconditionally. Short or blank lines
// become the bare number.
func strictLine(line, number string) string {
	if utf8.RuneCountInString(line) < parser.SequenceColumns || parser.IsBlank(line) {
		return number
	}
	return number + afterSequenceArea(line)
}

// heuristicLine handles lines whose sequence area may hold stray content.
// Digit or blank areas are overwritten like strictLine. Anything else is
// left-trimmed and pushed past the number: comment and continuation
// indicators land in column 7, everything else starts in column 8.
func heuristicLine(line, number string) string {
	if parser.IsBlank(line) {
		return number
	}
	if parser.HasSequenceNumber(line) || parser.HasBlankSequenceArea(line) {
		return number + afterSequenceArea(line)
	}

	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "*") || strings.HasPrefix(trimmed, "-") {
		return number + trimmed
	}
	return number + " " + trimmed
}

func afterSequenceArea(line string) string {
	return string([]rune(line)[parser.SequenceColumns:])
}
