package parser

import (
	"strings"
	"unicode"

	"cobbler/pkg/linestate"
)

// SequenceColumns is the width of the fixed-format COBOL sequence number area.
const SequenceColumns = 6

// Classify decides whether lines carry sequence numbers in columns 1-6.
//
// A tab anywhere, a short line that is not blank, or a prefix holding
// anything other than digits and spaces makes the result Indeterminate and
// stops the scan. Digit prefixes outrank space prefixes, but finding both
// kinds is Indeterminate too. Input with no classifiable line at all (only
// blank lines, say) is also Indeterminate.
func Classify(lines []string) linestate.LineState {
	var (
		indeterminate bool
		sawDigits     bool
		sawSpaces     bool
	)

	for _, line := range lines {
		if strings.ContainsRune(line, '\t') {
			indeterminate = true
		}

		if prefix, ok := sequenceArea(line); ok {
			spaces, oddSpaces := allSpaces(prefix)
			digits, oddDigits := allDigits(prefix)
			sawSpaces = sawSpaces || spaces
			sawDigits = sawDigits || digits
			if oddSpaces || oddDigits {
				indeterminate = true
			}
		} else if IsBlank(line) {
			continue
		} else {
			// too short to hold a sequence number, yet not blank
			indeterminate = true
		}

		if indeterminate {
			break
		}
	}

	if sawDigits && sawSpaces {
		indeterminate = true
	}

	switch {
	case indeterminate:
		return linestate.Indeterminate
	case sawDigits:
		return linestate.Numbered
	case sawSpaces:
		return linestate.NotNumbered
	default:
		return linestate.Indeterminate
	}
}

// ClassifyText splits text and classifies the resulting lines.
func ClassifyText(text string) linestate.LineState {
	return Classify(SplitLines(text))
}

// sequenceArea returns the first SequenceColumns runes of line, or false if
// the line is shorter than that.
func sequenceArea(line string) ([]rune, bool) {
	runes := []rune(line)
	if len(runes) < SequenceColumns {
		return nil, false
	}
	return runes[:SequenceColumns], true
}

// allSpaces reports whether prefix is entirely spaces. odd is set when the
// first non-space rune is not a digit either.
func allSpaces(prefix []rune) (ok, odd bool) {
	for _, r := range prefix {
		if r != ' ' {
			return false, !unicode.IsDigit(r)
		}
	}
	return true, false
}

// allDigits reports whether prefix is entirely digits. odd is set when the
// first non-digit rune is not a space either.
func allDigits(prefix []rune) (ok, odd bool) {
	for _, r := range prefix {
		if !unicode.IsDigit(r) {
			return false, r != ' '
		}
	}
	return true, false
}

// HasSequenceNumber reports whether line starts with SequenceColumns digits.
func HasSequenceNumber(line string) bool {
	prefix, ok := sequenceArea(line)
	if !ok {
		return false
	}
	digits, _ := allDigits(prefix)
	return digits
}

// HasBlankSequenceArea reports whether line starts with SequenceColumns spaces.
func HasBlankSequenceArea(line string) bool {
	prefix, ok := sequenceArea(line)
	if !ok {
		return false
	}
	spaces, _ := allSpaces(prefix)
	return spaces
}

// IsBlank reports whether line holds nothing but control characters and
// spaces, i.e. every rune is at or below U+0020.
func IsBlank(line string) bool {
	for _, r := range line {
		if r > ' ' {
			return false
		}
	}
	return true
}
