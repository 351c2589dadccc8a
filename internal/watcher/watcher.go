// Package watcher re-classifies a COBOL source file whenever it changes on disk.
package watcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"cobbler/internal/clock"
	"cobbler/internal/parser"
	"cobbler/pkg/linestate"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 150 * time.Millisecond

var (
	ErrAlreadyStarted = errors.New("watcher already started")
	ErrStopped        = errors.New("watcher stopped")
)

// Event reports the classification of the file after a change.
type Event struct {
	Path  string
	State linestate.LineState
	Lines int
	At    time.Time
}

// Watcher watches a single file and emits an Event after each settled change.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Clock    clock.Clock
	Logger   *slog.Logger

	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	started  bool
	stopped  bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
	eventsCh chan Event
	errorCh  chan error
}

// New creates a Watcher for path. The file must exist.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", parser.ErrFileNotFound, path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &Watcher{
		Path:     abs,
		Debounce: DefaultDebounce,
		Clock:    clock.RealClock{},
		Logger:   slog.Default(),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
		eventsCh: make(chan Event, 10),
		errorCh:  make(chan error, 2),
	}, nil
}

// Start watches the file's directory so saves that replace the file by
// rename are still seen.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.Path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.Path), err)
	}

	if err := w.run(fsw.Events, fsw.Errors); err != nil {
		fsw.Close()
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		fsw.Close()
		return ErrStopped
	}
	w.fsw = fsw
	return nil
}

func (w *Watcher) run(events <-chan fsnotify.Event, errs <-chan error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrStopped
	}
	if w.started {
		return ErrAlreadyStarted
	}
	w.started = true
	go w.loop(events, errs)
	return nil
}

// Stop ends the background goroutine and releases the watch. Events and
// Errors are closed once it returns.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.mu.Lock()
		w.stopped = true
		started, fsw := w.started, w.fsw
		w.mu.Unlock()

		close(w.stopCh)
		if fsw != nil {
			fsw.Close()
		}
		if started {
			<-w.done
			return
		}
		close(w.eventsCh)
		close(w.errorCh)
	})
}

// Events returns a channel of classifications, one per settled change.
// It is closed when the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.eventsCh
}

// Errors returns a channel of errors encountered while watching.
func (w *Watcher) Errors() <-chan error {
	return w.errorCh
}

// Check reads and classifies the file now.
func (w *Watcher) Check() (Event, error) {
	text, err := parser.ReadSourceFile(w.Path)
	if err != nil {
		return Event{}, err
	}
	lines := parser.SplitLines(text)
	return Event{
		Path:  w.Path,
		State: parser.Classify(lines),
		Lines: len(lines),
		At:    w.Clock.Now(),
	}, nil
}

func (w *Watcher) loop(events <-chan fsnotify.Event, errs <-chan error) {
	defer func() {
		close(w.eventsCh)
		close(w.errorCh)
		close(w.done)
	}()

	var settle <-chan time.Time
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.Logger.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			settle = w.Clock.After(w.Debounce)
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.sendError(err)
		case <-settle:
			settle = nil
			e, err := w.Check()
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendEvent(e)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.Path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create)
}

func (w *Watcher) sendEvent(e Event) {
	select {
	case w.eventsCh <- e:
	case <-w.stopCh:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorCh <- err:
	default:
		w.Logger.Warn("dropping watcher error", "err", err)
	}
}
