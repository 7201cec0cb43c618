package transport

import (
	"bytes"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/pkg/diff"
)

// maxDiffLines caps the change diff written to the debug log.
const maxDiffLines = 40

// StateFileErrorMsg reports a bootstrap file that could not be re-read.
type StateFileErrorMsg struct {
	Path string
	Err  error
}

// StateWatcher re-reads the host's bootstrap file whenever it changes and
// turns its contents into inbound messages.
type StateWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	msgs    chan tea.Msg
	log     *logger.Logger

	// last holds the contents most recently delivered, so rewrites with
	// identical bytes are not replayed.
	last []byte
}

// WatchState starts watching path. The directory is watched rather than the
// file so atomic replace-by-rename is picked up.
func WatchState(path string, log *logger.Logger) (*StateWatcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	w := &StateWatcher{
		path:    path,
		watcher: watcher,
		msgs:    make(chan tea.Msg, 16),
		log:     log.With("statefile"),
	}
	if data, err := os.ReadFile(path); err == nil {
		w.last = data
	}
	go w.watchLoop()
	return w, nil
}

func (w *StateWatcher) watchLoop() {
	defer close(w.msgs)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.msgs <- StateFileErrorMsg{Path: w.path, Err: err}
		}
	}
}

func (w *StateWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.msgs <- StateFileErrorMsg{Path: w.path, Err: err}
		return
	}
	if bytes.Equal(data, w.last) {
		return
	}

	bs, err := config.ParseBootstrap(w.path, data)
	if err != nil {
		// Writers may truncate before writing; the next event carries the full file.
		w.log.Debug("state file not readable yet", "path", w.path, "error", err.Error())
		w.msgs <- StateFileErrorMsg{Path: w.path, Err: err}
		return
	}

	w.log.Debug("state file changed", "path", w.path, "diff", diff.Lines(w.last, data, "previous", "current", maxDiffLines))
	w.last = data
	for _, in := range bs.Messages() {
		w.msgs <- bridge.InboundMsg{Message: in}
	}
}

// Listen returns a command that waits for the next message from the file.
func (w *StateWatcher) Listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-w.msgs
		if !ok {
			return nil
		}
		return msg
	}
}

// Close stops the watcher.
func (w *StateWatcher) Close() error {
	return w.watcher.Close()
}
