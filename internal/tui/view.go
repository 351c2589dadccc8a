package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"cobbler/pkg/linestate"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	switch m.ActiveView {
	case ViewQuitting:
		return quittingView()
	case ViewDetail:
		return detailView(m)
	case ViewConfirm:
		return confirmView(m.prompt, m.width)
	default:
		return fileListView(m)
	}
}

func quittingView() string {
	return "Goodbye!\n"
}

func stateColor(s linestate.LineState) lipgloss.Color {
	switch s {
	case linestate.Numbered:
		return lipgloss.Color("#00FF00")
	case linestate.NotNumbered:
		return lipgloss.Color("#00AFFF")
	default:
		return lipgloss.Color("#FFFF00")
	}
}

func detailView(m model) string {
	if m.doc == nil {
		return fileListView(m)
	}

	stateStyle := lipgloss.NewStyle().Bold(true).Foreground(stateColor(m.doc.state))
	pb := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	block := lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.RoundedBorder()).Render(
		fmt.Sprintf("%s\n%s\n%s\n\n%s",
			headerStyle.Render("File: ")+m.doc.path,
			headerStyle.Render("Line state: ")+stateStyle.Render(m.doc.state.String()),
			headerStyle.Render("Sequence numbers: ")+pb.ViewAs(m.doc.coverage),
			m.detail.View(),
		),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		block,
		footer(m),
		helpStyle.Render("n: add line numbers • r: remove line numbers • esc: back • q: quit"),
	)
}

func footer(m model) string {
	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.status != "":
		return statusStyle.Render(m.status)
	}
	return ""
}

func confirmView(prompt string, width int) string {
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	body := wrapText(prompt, max(width-6, 20))
	return lipgloss.NewStyle().Padding(1).BorderStyle(lipgloss.DoubleBorder()).Render(
		fmt.Sprintf("%s\n\n%s\n\n%s",
			warnStyle.Render("Warning"),
			body,
			helpStyle.Render("y: proceed • n/esc: cancel")),
	)
}

func fileListView(m model) string {
	fileList := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Padding(1).
		Render(m.list.View())

	parts := []string{fileList}
	if f := footer(m); f != "" {
		parts = append(parts, f)
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}
