// Package highlight renders COBOL source for the terminal.
package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"cobbler/internal/state"
)

// styleNames maps settings themes to the closest chroma style.
var styleNames = map[state.Theme]string{
	state.ThemeDark:       "native",
	state.ThemeDefault:    "github",
	state.ThemeDefaultAlt: "friendly",
	state.ThemeDruid:      "solarized-dark",
	state.ThemeEclipse:    "colorful",
	state.ThemeIdea:       "xcode",
	state.ThemeMonokai:    "monokai",
	state.ThemeVS:         "vs",
}

var invisibles = strings.NewReplacer(" ", "·", "\t", "→", "\n", "¶\n")

// StyleName returns the chroma style used for theme.
func StyleName(theme state.Theme) string {
	if name, ok := styleNames[theme]; ok {
		return name
	}
	return styleNames[state.ThemeDefault]
}

// Highlighter writes source code with terminal colours.
type Highlighter struct {
	Lexer      chroma.Lexer
	Style      *chroma.Style
	Formatter  chroma.Formatter
	Invisibles bool
}

// New returns a Highlighter for COBOL. With color off the source is written
// unchanged apart from invisible markers.
func New(theme state.Theme, color, showInvisibles bool) *Highlighter {
	f := formatters.NoOp
	if color {
		f = formatters.TTY256
	}
	return &Highlighter{
		Lexer:      cobolLexer(),
		Style:      styles.Get(StyleName(theme)),
		Formatter:  f,
		Invisibles: showInvisibles,
	}
}

func cobolLexer() chroma.Lexer {
	l := lexers.Get("cobol")
	if l == nil {
		l = lexers.Match("program.cob")
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Render highlights source into w.
func (h *Highlighter) Render(w io.Writer, source string) error {
	it, err := h.Lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising source: %w", err)
	}
	if h.Invisibles {
		tokens := it.Tokens()
		for i := range tokens {
			tokens[i].Value = ShowInvisibles(tokens[i].Value)
		}
		it = chroma.Literator(tokens...)
	}
	if err := h.Formatter.Format(w, h.Style, it); err != nil {
		return fmt.Errorf("formatting source: %w", err)
	}
	return nil
}

// ShowInvisibles marks spaces, tabs and line ends with visible glyphs.
func ShowInvisibles(s string) string {
	return invisibles.Replace(s)
}
