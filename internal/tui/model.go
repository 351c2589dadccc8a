package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"

	"cobbler/internal/core"
	"cobbler/internal/state"
	"cobbler/internal/watcher"
	"cobbler/pkg/linestate"
)

type View int

const (
	ViewFileList View = iota
	ViewDetail
	ViewConfirm
	ViewQuitting
)

type operation int

const (
	opNone operation = iota
	opAdd
	opRemove
)

// FileItem is a recent file in the list.
type FileItem struct {
	Path  string
	State linestate.LineState
	Known bool // State was read from disk
}

func (f FileItem) Title() string { return f.Path }
func (f FileItem) Description() string {
	if !f.Known {
		return "not opened yet"
	}
	return f.State.String()
}
func (f FileItem) FilterValue() string { return f.Path }

// document is the file open in the detail view.
type document struct {
	path     string
	text     string
	state    linestate.LineState
	lines    int
	coverage float64 // share of lines carrying a sequence number
}

// model is the Bubbletea model for the TUI.
type model struct {
	ActiveView View

	list   list.Model
	detail table.Model
	height int
	width  int

	engine   *core.Engine
	store    core.SettingsStore
	settings state.Settings

	doc     *document
	status  string
	err     error
	pending operation
	prompt  string

	watchFiles bool
	watcher    *watcher.Watcher
}

// InitialModel creates the TUI model listing files.
func InitialModel(files []string, height int, engine *core.Engine, store core.SettingsStore) model {
	settings, err := store.Load()
	if err != nil {
		settings = state.Default()
	}

	items := make([]list.Item, len(files))
	for i, f := range files {
		items[i] = FileItem{Path: f}
	}

	defaultWidth := 80
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, defaultWidth, max(height-8, 5))
	l.Title = "Recent files"

	return model{
		ActiveView: ViewFileList,
		list:       l,
		detail:     newDetailTable(defaultWidth),
		height:     height,
		width:      defaultWidth,
		engine:     engine,
		store:      store,
		settings:   settings,
		err:        err,
	}
}

func newDetailTable(width int) table.Model {
	columns := []table.Column{
		{Title: "Field", Width: 16},
		{Title: "Value", Width: max(width-24, 20)},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(6),
	)
}
