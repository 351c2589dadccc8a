package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"cobbler/internal/core"
	"cobbler/internal/parser"
	"cobbler/internal/rewrite"
	"cobbler/internal/watcher"
	"cobbler/pkg/linestate"
)

// Message types for Bubbletea update loop
type fileChangedMsg watcher.Event
type watchErrMsg struct{ err error }

// watchFileCmd returns a Bubbletea command that waits for the next change to
// the open file. It yields nil once the watcher has been stopped.
func watchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			return fileChangedMsg(ev)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err}
		}
	}
}

// Update handles all Bubbletea update logic for the TUI model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case fileChangedMsg:
		return handleFileChanged(m, msg)
	case watchErrMsg:
		m.err = msg.err
		return m, resubscribe(m)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		if m.ActiveView == ViewFileList {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	k := msg.String()

	switch m.ActiveView {
	case ViewQuitting:
		return m, nil

	case ViewConfirm:
		switch k {
		case "y", "Y":
			op := m.pending
			m.pending, m.prompt = opNone, ""
			m.ActiveView = ViewDetail
			return apply(m, op, core.Yes), nil
		case "n", "N", "esc":
			m.pending, m.prompt = opNone, ""
			m.status = core.ErrCancelled.Error()
			m.ActiveView = ViewDetail
			return m, nil
		case "ctrl+c":
			return quit(m)
		}
		return m, nil

	case ViewDetail:
		switch k {
		case "ctrl+c", "q":
			return quit(m)
		case "esc":
			m = closeDocument(m)
			m.ActiveView = ViewFileList
			return m, nil
		case "n":
			return request(m, opAdd), nil
		case "r":
			return request(m, opRemove), nil
		}
		return m, nil

	case ViewFileList:
		if m.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		switch k {
		case "ctrl+c", "q":
			return quit(m)
		case "enter":
			item, ok := m.list.SelectedItem().(FileItem)
			if !ok {
				return m, nil
			}
			return openDocument(m, item.Path)
		default:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func quit(m model) (model, tea.Cmd) {
	m = closeDocument(m)
	m.ActiveView = ViewQuitting
	return m, tea.Quit
}

// request starts an add or remove. Indeterminate documents go through the
// confirmation view first.
func request(m model, op operation) model {
	if m.doc == nil {
		return m
	}
	m.status, m.err = "", nil
	if m.doc.state == linestate.Indeterminate {
		m.pending = op
		m.prompt = core.AddWarning
		if op == opRemove {
			m.prompt = core.RemoveWarning
		}
		m.ActiveView = ViewConfirm
		return m
	}
	return apply(m, op, nil)
}

// apply runs the workflow and writes the result back to disk.
func apply(m model, op operation, confirm core.ConfirmFunc) model {
	var (
		out core.Outcome
		err error
	)
	switch op {
	case opAdd:
		out, err = m.engine.AddLineNumbers(m.doc.text, m.settings.Increment, confirm)
	case opRemove:
		out, err = m.engine.RemoveLineNumbers(m.doc.text, confirm)
	default:
		return m
	}
	if err != nil {
		if errors.Is(err, core.ErrCancelled) {
			m.status = err.Error()
			return m
		}
		m.err = err
		return m
	}

	if err := rewrite.WriteFile(m.doc.path, out.Text); err != nil {
		m.err = err
		return m
	}
	m = loadDocument(m, m.doc.path, out.Text)

	switch {
	case out.Message != "":
		m.status = out.Message
	case op == opAdd:
		m.status = fmt.Sprintf("Line numbers added with increment %d.", m.settings.Increment)
	default:
		m.status = "Line numbers removed."
	}
	return m
}

func openDocument(m model, path string) (model, tea.Cmd) {
	text, err := parser.ReadSourceFile(path)
	if err != nil {
		m.err = err
		return m, nil
	}
	m = closeDocument(m)
	m = loadDocument(m, path, text)
	m.status, m.err = "", nil
	m.ActiveView = ViewDetail

	if m.store != nil {
		if err := core.RememberFile(m.store, path); err != nil {
			m.err = err
		}
	}

	if !m.watchFiles {
		return m, nil
	}
	w, err := watcher.New(path)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.watcher = w
	return m, watchFileCmd(w)
}

func closeDocument(m model) model {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	m.doc = nil
	return m
}

// loadDocument replaces the open document with text and refreshes the
// detail table and the list entry.
func loadDocument(m model, path, text string) model {
	lines := parser.SplitLines(text)
	doc := &document{
		path:     path,
		text:     text,
		state:    parser.Classify(lines),
		lines:    len(lines),
		coverage: coverage(lines),
	}
	m.doc = doc
	m.detail.SetRows([]table.Row{
		{"File", doc.path},
		{"Line state", doc.state.String()},
		{"Lines", fmt.Sprint(doc.lines)},
		{"Increment", fmt.Sprint(m.settings.Increment)},
	})

	items := m.list.Items()
	for i, it := range items {
		if fi, ok := it.(FileItem); ok && fi.Path == path {
			m.list.SetItem(i, FileItem{Path: path, State: doc.state, Known: true})
		}
	}
	return m
}

func handleFileChanged(m model, msg fileChangedMsg) (model, tea.Cmd) {
	if m.doc == nil || m.doc.path != msg.Path {
		return m, resubscribe(m)
	}
	text, err := parser.ReadSourceFile(msg.Path)
	if err != nil {
		m.err = err
		return m, resubscribe(m)
	}
	if text != m.doc.text {
		m = loadDocument(m, msg.Path, text)
		m.status = "File changed on disk."
	}
	return m, resubscribe(m)
}

func resubscribe(m model) tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return watchFileCmd(m.watcher)
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.height = msg.Height
	m.width = msg.Width
	m.list.SetHeight(max(msg.Height-8, 5))
	m.list.SetWidth(msg.Width)

	rows := m.detail.Rows()
	m.detail = newDetailTable(msg.Width)
	m.detail.SetRows(rows)
	return m, nil
}

// coverage is the share of lines that start with a sequence number.
func coverage(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	n := 0
	for _, l := range lines {
		if parser.HasSequenceNumber(l) {
			n++
		}
	}
	return float64(n) / float64(len(lines))
}
