// Package watch re-runs the column filter whenever the input file changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single spreadsheet file and invokes OnChange after
// each write, debounced so editors that save in several steps trigger one
// run.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(path string) error
	Logger   *log.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
}

// New creates a watcher for the given file.
func New(path string, onChange func(path string) error) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	return &Watcher{
		Path:     abs,
		Debounce: 500 * time.Millisecond,
		OnChange: onChange,
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		watcher:  fsw,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
// The parent directory is watched rather than the file itself because
// many editors replace files on save, which drops a direct watch.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.watcher.Close()

	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w.Logger.Printf("watching %s", w.Path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.Path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.Debounce, func() {
		w.Logger.Printf("change detected, re-filtering %s", filepath.Base(w.Path))
		if err := w.OnChange(w.Path); err != nil {
			w.Logger.Printf("filter failed: %v", err)
		}
	})
}
