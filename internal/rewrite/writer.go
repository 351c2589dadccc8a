package rewrite

import "strings"

// lineWriter accumulates output lines, terminating each with sep.
type lineWriter struct {
	sb  strings.Builder
	sep string
}

func newLineWriter(sep string, lines int) *lineWriter {
	w := &lineWriter{sep: sep}
	// sequence area plus a typical fixed-format card
	w.sb.Grow(lines * (80 + len(sep)))
	return w
}

// WriteLine appends line followed by the separator.
func (w *lineWriter) WriteLine(line string) {
	w.sb.WriteString(line)
	w.sb.WriteString(w.sep)
}

func (w *lineWriter) String() string {
	return w.sb.String()
}
