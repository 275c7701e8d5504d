// Package fs implements the scene resolver against the local filesystem.
// Scene templates are YAML documents resolved relative to a root directory.
package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// template is the on-disk shape of a scene template.
type template struct {
	Name  string         `yaml:"name"`
	Kind  string         `yaml:"kind"`
	Props map[string]any `yaml:"props"`
}

type asyncLoad struct {
	mu       sync.Mutex
	progress float64
	done     bool
	res      *domain.Resource
	err      error
}

// Resolver loads scene templates from disk. Concurrent loads of the same
// path are collapsed into one read via singleflight; the single load
// channel above it is the policy layer, this is belt-and-braces against
// racing pollers.
type Resolver struct {
	root string

	group singleflight.Group

	mu    sync.Mutex
	loads map[string]*asyncLoad
}

// NewResolver creates a resolver rooted at the given directory.
func NewResolver(root string) *Resolver {
	return &Resolver{
		root:  root,
		loads: make(map[string]*asyncLoad),
	}
}

// Root returns the resolver's root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Exists reports whether a template file exists at path under the root.
// Paths escaping the root do not exist by definition.
func (r *Resolver) Exists(path string) bool {
	full, ok := r.join(path)
	if !ok {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}

// Load reads and parses the template at path synchronously.
func (r *Resolver) Load(path string) (*domain.Resource, error) {
	v, err, _ := r.group.Do(path, func() (any, error) {
		return r.read(path, nil)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Resource), nil
}

// LoadAsyncStart begins loading the template at path in the background.
// Starting a path that is already in flight is a no-op.
func (r *Resolver) LoadAsyncStart(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loads[path]; ok {
		return nil
	}

	l := &asyncLoad{}
	r.loads[path] = l

	go func() {
		res, err := r.read(path, func(p float64) {
			l.mu.Lock()
			l.progress = p
			l.mu.Unlock()
		})
		l.mu.Lock()
		l.res = res
		l.err = err
		l.done = true
		l.progress = 1
		l.mu.Unlock()
	}()

	return nil
}

// LoadAsyncPoll reports the state of the background load for path. The
// first poll that observes a terminal state clears the resolver's
// bookkeeping for the path.
func (r *Resolver) LoadAsyncPoll(path string) ports.LoadPoll {
	r.mu.Lock()
	l, ok := r.loads[path]
	r.mu.Unlock()

	if !ok {
		return ports.LoadPoll{
			Status: ports.LoadFailed,
			Err:    zerr.With(zerr.Wrap(domain.ErrLoadFailed, "no load in flight"), "path", path),
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.done {
		return ports.LoadPoll{Status: ports.LoadInProgress, Progress: l.progress}
	}

	r.mu.Lock()
	delete(r.loads, path)
	r.mu.Unlock()

	if l.err != nil {
		return ports.LoadPoll{Status: ports.LoadFailed, Progress: 1, Err: l.err}
	}
	return ports.LoadPoll{Status: ports.LoadDone, Progress: 1, Resource: l.res}
}

// read loads, fingerprints, and parses a template file. onProgress, when
// non-nil, receives fractions in [0, 1] as the file is consumed.
func (r *Resolver) read(path string, onProgress func(float64)) (*domain.Resource, error) {
	full, ok := r.join(path)
	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrTargetNotFound, "path escapes scene root"), "path", path)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrTargetNotFound, err), "opening scene template"), "path", path)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrLoadFailed, err), "reading scene template"), "path", path)
	}

	raw, err := readAll(f, info.Size(), onProgress)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrLoadFailed, err), "reading scene template"), "path", path)
	}

	var tpl template
	if err := yaml.Unmarshal(raw, &tpl); err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrTemplateParseFailed, err), "parsing scene template"), "path", path)
	}

	return &domain.Resource{
		Path:     path,
		Name:     tpl.Name,
		Kind:     tpl.Kind,
		Props:    tpl.Props,
		Checksum: xxhash.Sum64(raw),
	}, nil
}

// join resolves path under the root, rejecting escapes.
func (r *Resolver) join(path string) (string, bool) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.Join(r.root, clean), true
}
