// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     watch
// Description: Re-runs a handler when itinerary sources change on disk
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
)

// DefaultDebounce is used when Options.Debounce is zero
const DefaultDebounce = 300 * time.Millisecond

// Handler is called with the absolute path of a changed file
type Handler func(ctx context.Context, path string)

// Options configures a Watcher
type Options struct {
	Paths    []string
	Debounce time.Duration
	Logger   *mdwlog.Logger
	OnChange Handler
}

// Watcher watches the directories of a set of files and calls OnChange
// once per burst of writes to one of those files
type Watcher struct {
	files    map[string]bool
	dirs     []string
	debounce time.Duration
	logger   *mdwlog.Logger
	onChange Handler

	mu      sync.Mutex
	running bool
}

// New creates a watcher for the given files
func New(opts Options) (*Watcher, error) {
	if len(opts.Paths) == 0 {
		return nil, mdwerror.New("no files to watch").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.New")
	}
	if opts.OnChange == nil {
		return nil, mdwerror.New("change handler is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.New")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	w := &Watcher{
		files:    make(map[string]bool),
		debounce: opts.Debounce,
		logger:   opts.Logger.WithField("component", "roteiro-watch"),
		onChange: opts.OnChange,
	}

	seen := make(map[string]bool)
	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = true
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// Run blocks until ctx is done. The handler runs on the watch goroutine,
// so calls never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return mdwerror.New("watcher already running").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("watch.Run")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watching the directory survives editors that save by rename
	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory: %w", err)
		}
	}

	w.logger.Info("Watching for changes", mdwlog.Fields{"files": len(w.files), "debounce": w.debounce.String()})
	return w.loop(ctx, watcher)
}

func (w *Watcher) loop(ctx context.Context, watcher *fsnotify.Watcher) error {
	fire := make(chan string, len(w.files))
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping file watcher (context cancelled)")
			return nil

		case path := <-fire:
			delete(timers, path)
			w.logger.Debug("Source changed", mdwlog.Fields{"file": filepath.Base(path)})
			w.onChange(ctx, path)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(event.Name)
			if !w.files[path] {
				continue
			}

			switch {
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				if t, exists := timers[path]; exists {
					t.Reset(w.debounce)
					continue
				}
				timers[path] = time.AfterFunc(w.debounce, func() {
					select {
					case fire <- path:
					default:
					}
				})
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				w.logger.Warn("Watched source removed", mdwlog.Fields{"file": filepath.Base(path)})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}
