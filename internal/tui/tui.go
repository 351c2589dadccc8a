package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"cobbler/internal/core"
)

// wrapText wraps input text to lines no longer than maxWidth display cells.
// It wraps on word boundaries to avoid breaking words when possible.
func wrapText(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return s
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var line strings.Builder
		width := 0
		for _, word := range words {
			w := runewidth.StringWidth(word)
			if width > 0 && width+1+w > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				width = 0
			}
			if width > 0 {
				line.WriteByte(' ')
				width++
			}
			line.WriteString(word)
			width += w
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// Init initializes the TUI model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the cobbler TUI over files, most recent first.
func Run(files []string, engine *core.Engine, store core.SettingsStore) error {
	m := InitialModel(files, 24, engine, store)
	m.watchFiles = true
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())

	final, err := p.Run()
	if a, ok := final.(*teaModelAdapter); ok {
		closeDocument(a.m)
	}
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}

// confirmModel is a one-question y/n prompt.
type confirmModel struct {
	prompt   string
	width    int
	answered bool
	yes      bool
}

func (c confirmModel) Init() tea.Cmd { return nil }

func (c confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			c.answered, c.yes = true, true
			return c, tea.Quit
		case "n", "N", "esc", "q", "ctrl+c":
			c.answered = true
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c confirmModel) View() string {
	if c.answered {
		return ""
	}
	return confirmView(c.prompt, c.width) + "\n"
}

// Confirmer returns a core.ConfirmFunc that asks on the terminal.
func Confirmer(in io.Reader, out io.Writer) core.ConfirmFunc {
	return func(message string) (bool, error) {
		p := tea.NewProgram(confirmModel{prompt: message, width: 80}, tea.WithInput(in), tea.WithOutput(out))
		final, err := p.Run()
		if err != nil {
			return false, fmt.Errorf("running confirmation prompt: %w", err)
		}
		c, ok := final.(confirmModel)
		return ok && c.yes, nil
	}
}
