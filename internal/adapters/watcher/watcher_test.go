package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stage/internal/adapters/watcher"
)

type fakeInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeInvalidator) InvalidatePreloaded(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
	return true
}

func (f *fakeInvalidator) invalidated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func startWatcher(t *testing.T, inv *fakeInvalidator, root string) {
	t.Helper()
	w, err := watcher.New(inv, nopLogger{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
}

func TestWatcher_InvalidatesChangedTemplate(t *testing.T) {
	root := t.TempDir()
	scenes := filepath.Join(root, "scenes")
	require.NoError(t, os.MkdirAll(scenes, 0o755))
	target := filepath.Join(scenes, "menu.yaml")
	require.NoError(t, os.WriteFile(target, []byte("name: Menu\n"), 0o644))

	inv := &fakeInvalidator{}
	startWatcher(t, inv, root)

	require.NoError(t, os.WriteFile(target, []byte("name: Menu v2\n"), 0o644))

	require.Eventually(t, func() bool {
		for _, p := range inv.invalidated() {
			if p == "scenes/menu.yaml" {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresNonTemplateFiles(t *testing.T) {
	root := t.TempDir()
	inv := &fakeInvalidator{}
	startWatcher(t, inv, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, inv.invalidated())
}

func TestWatcher_InvalidatesRemovedTemplate(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "level.yml")
	require.NoError(t, os.WriteFile(target, []byte("name: Level\n"), 0o644))

	inv := &fakeInvalidator{}
	startWatcher(t, inv, root)

	require.NoError(t, os.Remove(target))

	require.Eventually(t, func() bool {
		for _, p := range inv.invalidated() {
			if p == "level.yml" {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}
