// Package watcher invalidates preloaded scene resources when their
// backing template files change on disk.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invalidator drops a cached resource for a changed scene path.
type Invalidator interface {
	InvalidatePreloaded(path string) bool
}

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Watcher watches a scene root recursively and invalidates preload cache
// entries for templates that change.
type Watcher struct {
	fsWatcher   *fsnotify.Watcher
	invalidator Invalidator
	log         ports.Logger
	root        string
}

// New creates a Watcher that reports invalidations to inv.
func New(inv Invalidator, log ports.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create file watcher")
	}
	return &Watcher{fsWatcher: fsw, invalidator: inv, log: log}, nil
}

// Start begins watching root recursively and processes events until ctx
// is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	w.root = root

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable directories, keep walking
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch scene root"), "root", root)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	// New directories need their own watch for recursive coverage.
	if ev.Op.Has(fsnotify.Create) && isDir(ev.Name) {
		_ = w.fsWatcher.Add(ev.Name)
		return
	}

	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}
	if !isTemplate(ev.Name) {
		return
	}

	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}
	path := filepath.ToSlash(rel)
	if w.invalidator.InvalidatePreloaded(path) {
		w.log.Info("invalidated preloaded scene: " + path)
	}
}

func isDir(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.IsDir()
}

func isTemplate(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
