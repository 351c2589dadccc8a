package linestate

import (
	"fmt"
	"strings"
)

// LineState classifies a whole COBOL source document by what it carries in
// the sequence-number columns (1-6).
type LineState int

const (
	// Indeterminate means the numbering could not be characterised with
	// confidence: mixed prefixes, a tab, a short non-blank line, or no
	// signal at all. It is the zero value.
	Indeterminate LineState = iota
	// Numbered means the prefix columns consistently hold digits.
	Numbered
	// NotNumbered means the prefix columns consistently hold spaces.
	NotNumbered
)

var names = map[LineState]string{
	Indeterminate: "INDETERMINATE",
	Numbered:      "NUMBERED",
	NotNumbered:   "NOT_NUMBERED",
}

func (s LineState) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return fmt.Sprintf("LineState(%d)", int(s))
}

// Parse returns the LineState with the given name, ignoring case.
func Parse(name string) (LineState, error) {
	for s, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return Indeterminate, fmt.Errorf("unknown line state %q", name)
}

func (s LineState) MarshalText() ([]byte, error) {
	if _, ok := names[s]; !ok {
		return nil, fmt.Errorf("invalid line state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *LineState) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
