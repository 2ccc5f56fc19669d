package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/amterp/nids/internal/config"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// ChangeType indicates what type of change occurred.
type ChangeType string

const (
	ChangeCreated  ChangeType = "created"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// Change represents a change to the named ID file.
type Change struct {
	Type ChangeType `json:"type"`
	Path string     `json:"path"`
}

// Subscriber receives change notifications.
type Subscriber interface {
	OnFileChange(change Change)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(change Change)

func (f SubscriberFunc) OnFileChange(change Change) { f(change) }

// Watcher watches the data directory and reports changes to the named
// ID file. Other files in the directory, including the temporary files
// written during a save, are ignored.
type Watcher struct {
	watcher     *fsnotify.Watcher
	dataDir     string
	delay       time.Duration
	mu          sync.RWMutex
	subscribers []Subscriber
	pending     *time.Timer
	pendingMu   sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// New creates a watcher for dataDir.
func New(dataDir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: w,
		dataDir: dataDir,
		delay:   DefaultDebounce,
		stopCh:  make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period before a change is reported.
// Must be called before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.delay = d
}

// Subscribe adds a subscriber to receive change notifications.
func (w *Watcher) Subscribe(sub Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, sub)
}

// Unsubscribe removes a subscriber.
func (w *Watcher) Unsubscribe(sub Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.subscribers {
		if s == sub {
			w.subscribers = append(w.subscribers[:i], w.subscribers[i+1:]...)
			return
		}
	}
}

// Start begins watching the data directory.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("file watcher cannot be restarted after stop")
	}
	w.running = true
	w.mu.Unlock()

	// The file itself is replaced by rename on every save, so watch the
	// directory rather than the file.
	if err := w.watcher.Add(w.dataDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dataDir, err)
	}

	go w.run()
	return nil
}

// Stop stops watching for changes.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running || w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.stopped = true
	w.mu.Unlock()

	w.pendingMu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.pendingMu.Unlock()

	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	change, ok := w.classify(event)
	if !ok {
		return
	}

	// Only the last event of a burst is reported.
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.delay, func() {
		w.emit(change)
	})
}

func (w *Watcher) emit(change Change) {
	// Check if watcher was stopped (debounce timer may fire after Stop)
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	subs := make([]Subscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.RUnlock()

	for _, sub := range subs {
		sub.OnFileChange(change)
	}
}

func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	relPath, err := filepath.Rel(w.dataDir, event.Name)
	if err != nil || strings.Contains(relPath, string(filepath.Separator)) {
		return Change{}, false
	}
	if relPath != config.NamedIDsFileName {
		return Change{}, false
	}

	change := Change{Path: relPath}
	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = ChangeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = ChangeModified
	case event.Op&fsnotify.Remove != 0:
		change.Type = ChangeDeleted
	case event.Op&fsnotify.Rename != 0:
		change.Type = ChangeDeleted // Rename source is effectively deleted
	default:
		return Change{}, false
	}
	return change, true
}
