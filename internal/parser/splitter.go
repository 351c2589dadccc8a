package parser

import "regexp"

// lineBreak matches any single line separator, CRLF first so that a CRLF pair
// is one split point and not two.
var lineBreak = regexp.MustCompile("\r\n|\r|\n")

// SplitLines splits text into lines, accepting any mix of "\r\n", "\r" and
// "\n" separators. Text without a separator is returned as a single line (so
// the empty string yields one empty line). Trailing empty lines are dropped.
func SplitLines(text string) []string {
	if !lineBreak.MatchString(text) {
		return []string{text}
	}

	lines := lineBreak.Split(text, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
