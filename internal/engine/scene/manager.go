package scene

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/stage/internal/cache"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultInstanceCacheSize bounds the instance cache unless reconfigured.
	DefaultInstanceCacheSize = 3
	// DefaultPreloadCacheSize bounds the preload resource cache unless reconfigured.
	DefaultPreloadCacheSize = 3

	defaultPollInterval = 16 * time.Millisecond
)

// SwitchOptions configures a single switch operation.
type SwitchOptions struct {
	// UseCache parks the outgoing scene in the instance cache instead of
	// disposing it, and allows the incoming scene to be taken from there.
	UseCache bool
	// Presentation is the loading screen to show while the switch is in
	// flight. nil skips the loading screen entirely.
	Presentation ports.Presentation
}

type instanceEntry struct {
	inst        ports.Instance
	cachedAt    time.Time
	accessCount int
}

type preloadEntry struct {
	res      *domain.Resource
	cachedAt time.Time
}

// Manager owns the active scene slot, both bounded caches, and the single
// load channel. It decides the acquisition path for a requested scene and
// drives the transition protocol.
//
// All state mutation happens under one lock, so interleaved calls never
// observe a half-updated cache or active slot. The manager is built for a
// single logical driver; a second load targeting a different path while
// one is in flight fails fast with ErrChannelBusy rather than queueing.
type Manager struct {
	resolver ports.Resolver
	factory  ports.Instantiator
	view     ports.LiveView
	log      ports.Logger

	mu           sync.Mutex
	observers    []ports.Observer
	pending      []domain.Event
	channel      *Channel
	preloaded    *cache.LRU[*preloadEntry]
	instances    *cache.LRU[*instanceEntry]
	current      ports.Instance
	currentPath  string
	previousPath string

	asyncLoad    bool
	pollInterval time.Duration
}

// NewManager creates a Manager with default cache bounds and synchronous
// loading.
func NewManager(
	resolver ports.Resolver,
	factory ports.Instantiator,
	view ports.LiveView,
	log ports.Logger,
) *Manager {
	m := &Manager{
		resolver:     resolver,
		factory:      factory,
		view:         view,
		log:          log,
		pollInterval: defaultPollInterval,
	}
	m.channel = NewChannel(resolver)
	m.preloaded = cache.New[*preloadEntry](
		DefaultPreloadCacheSize,
		nil,
		func(key string) { m.queue(removedEvent(key, domain.CachePreloaded)) },
	)
	m.instances = cache.New[*instanceEntry](
		DefaultInstanceCacheSize,
		func(_ string, e *instanceEntry) { e.inst.Dispose() },
		func(key string) { m.queue(removedEvent(key, domain.CacheInstances)) },
	)
	return m
}

// WithAsyncLoad makes fresh loads and preloads use the resolver's
// asynchronous path with progress polling.
func (m *Manager) WithAsyncLoad() *Manager {
	m.asyncLoad = true
	return m
}

// WithPollInterval sets the delay between load channel polls.
func (m *Manager) WithPollInterval(d time.Duration) *Manager {
	if d > 0 {
		m.pollInterval = d
	}
	return m
}

// Subscribe registers an observer for manager events.
func (m *Manager) Subscribe(o ports.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// Switch makes the scene at path the active scene.
//
// The incoming instance is acquired from the first source that has it:
// the preload cache, the in-flight load channel, the instance cache (when
// opts.UseCache is set), or a fresh load. The outgoing scene is parked in
// the instance cache when opts.UseCache is set, disposed otherwise.
// Switching to the already-active path is an idempotent no-op.
func (m *Manager) Switch(ctx context.Context, path string, opts SwitchOptions) error {
	if !m.resolver.Exists(path) {
		err := zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "switching scene"), "path", path)
		m.emit(failedEvent(domain.EventSwitchFailed, path, err))
		return err
	}

	m.mu.Lock()
	from := m.currentPath
	same := path == m.currentPath
	m.mu.Unlock()

	m.emit(domain.Event{Kind: domain.EventSwitchStarted, Path: path, From: from})

	if same {
		m.emit(domain.Event{Kind: domain.EventSwitchCompleted, Path: path})
		return nil
	}

	inst, err := m.acquire(ctx, path, opts.UseCache)
	if err != nil {
		m.emit(failedEvent(domain.EventSwitchFailed, path, err))
		return err
	}

	shown := false
	if opts.Presentation != nil {
		if err := opts.Presentation.Show(ctx); err != nil {
			inst.Dispose()
			err = zerr.With(zerr.Wrap(
				errors.Join(domain.ErrPresentationFailed, err), "showing load screen"), "path", path)
			m.emit(failedEvent(domain.EventSwitchFailed, path, err))
			return err
		}
		shown = true
		m.emit(domain.Event{Kind: domain.EventLoadScreenShown, Path: path})
	}

	m.transition(path, inst, opts.UseCache)
	m.flush()

	if err := m.view.AwaitReady(ctx, inst); err != nil {
		m.hide(ctx, opts.Presentation, shown, path)
		m.emit(failedEvent(domain.EventSwitchFailed, path, err))
		return zerr.With(zerr.Wrap(err, "scene never became ready"), "path", path)
	}

	m.hide(ctx, opts.Presentation, shown, path)
	m.emit(domain.Event{Kind: domain.EventSwitchCompleted, Path: path})
	return nil
}

// Preload loads the scene at path into the preload resource cache without
// instantiating it. It is idempotent: a path already preloaded, already in
// flight on the channel, already instantiated in the instance cache, or
// currently active is a no-op.
func (m *Manager) Preload(ctx context.Context, path string) error {
	if !m.resolver.Exists(path) {
		err := zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "preloading scene"), "path", path)
		m.emit(failedEvent(domain.EventPreloadFailed, path, err))
		return err
	}

	m.mu.Lock()
	if m.satisfiedLocked(path) {
		m.mu.Unlock()
		return nil
	}
	if st := m.channel.State(); m.channel.Path() == path &&
		(st == StateLoading || st == StateLoaded) {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	m.emit(domain.Event{Kind: domain.EventPreloadStarted, Path: path})

	m.mu.Lock()
	err := m.channel.Start(path, m.asyncLoad)
	m.mu.Unlock()

	if err != nil {
		m.emit(failedEvent(domain.EventPreloadFailed, path, err))
		return err
	}

	if m.asyncLoad {
		if err := m.awaitChannel(ctx, path); err != nil {
			m.emit(failedEvent(domain.EventPreloadFailed, path, err))
			return err
		}
	}

	m.mu.Lock()
	var consumeErr error
	if m.channel.Path() == path {
		var res *domain.Resource
		if res, consumeErr = m.channel.Consume(); consumeErr == nil {
			m.preloaded.Insert(path, &preloadEntry{res: res, cachedAt: time.Now()})
			m.queue(cachedEvent(path, domain.CachePreloaded))
		}
	} else {
		// The channel was cleared or repurposed while we waited and the
		// load result is gone.
		consumeErr = zerr.With(
			zerr.Wrap(domain.ErrNothingToConsume, "load discarded before completion"),
			"path", path)
	}
	// A racing switch may have consumed the load on our behalf; the scene
	// being live, cached, or just consumed satisfies the preload.
	if consumeErr != nil && (m.satisfiedLocked(path) ||
		(m.channel.Path() == path && m.channel.State() == StateInstantiated)) {
		consumeErr = nil
	}
	err = consumeErr
	m.mu.Unlock()
	m.flush()

	if err != nil {
		m.emit(failedEvent(domain.EventPreloadFailed, path, err))
		return err
	}

	m.emit(domain.Event{Kind: domain.EventPreloadCompleted, Path: path})
	return nil
}

// ClearCache disposes and empties both caches and resets the load channel
// so a stale in-flight record never blocks a later preload of the same
// path. A removal event fires per instance cache entry; preload entries
// are dropped silently.
func (m *Manager) ClearCache() {
	m.mu.Lock()
	for _, key := range m.instances.Keys() {
		m.queue(removedEvent(key, domain.CacheInstances))
	}
	m.instances.Clear()
	m.preloaded.Clear()
	m.channel.Reset()
	m.mu.Unlock()
	m.flush()
}

// SetInstanceCacheSize updates the instance cache bound, evicting down to
// it. Bounds below 1 fail with ErrInvalidConfig.
func (m *Manager) SetInstanceCacheSize(n int) error {
	m.mu.Lock()
	err := m.instances.SetMax(n)
	m.mu.Unlock()
	m.flush()
	return err
}

// SetPreloadCacheSize updates the preload cache bound, evicting down to
// it. Bounds below 1 fail with ErrInvalidConfig.
func (m *Manager) SetPreloadCacheSize(n int) error {
	m.mu.Lock()
	err := m.preloaded.SetMax(n)
	m.mu.Unlock()
	m.flush()
	return err
}

// InvalidatePreloaded drops the preload cache entry for path, reporting
// whether one was present. The watcher adapter calls this when the
// backing template file changes on disk.
func (m *Manager) InvalidatePreloaded(path string) bool {
	m.mu.Lock()
	_, ok := m.preloaded.Remove(path)
	if ok {
		m.queue(removedEvent(path, domain.CachePreloaded))
	}
	m.mu.Unlock()
	m.flush()
	return ok
}

// IsCached reports whether path is present in either cache.
func (m *Manager) IsCached(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.preloaded.Get(path); ok {
		return true
	}
	_, ok := m.instances.Get(path)
	return ok
}

// Progress reports load progress for path: 1.0 when present in either
// cache, the channel's polled progress for the in-flight path, and 0.0
// otherwise.
func (m *Manager) Progress(path string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.preloaded.Get(path); ok {
		return 1
	}
	if _, ok := m.instances.Get(path); ok {
		return 1
	}
	if m.channel.Path() == path {
		switch m.channel.State() {
		case StateLoaded:
			return 1
		case StateLoading:
			if st, err := m.channel.Poll(); err == nil && st == StateLoaded {
				return 1
			}
			return m.channel.Progress()
		case StateNotLoaded, StateInstantiated:
		}
	}
	return 0
}

// Current returns the active scene path and instance.
func (m *Manager) Current() (string, ports.Instance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentPath, m.current, m.current != nil
}

// PreviousPath returns the path that was active before the current one.
func (m *Manager) PreviousPath() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.previousPath
}

// CacheInfo returns a snapshot of both caches, least-recently-used first.
func (m *Manager) CacheInfo() domain.CacheInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := domain.CacheInfo{
		InstanceMax: m.instances.Max(),
		PreloadMax:  m.preloaded.Max(),
	}
	for _, key := range m.instances.Keys() {
		e, _ := m.instances.Get(key)
		info.InstanceEntries = append(info.InstanceEntries, domain.CacheEntryInfo{
			Path:        key,
			CachedAt:    e.cachedAt,
			AccessCount: e.accessCount,
		})
	}
	for _, key := range m.preloaded.Keys() {
		e, _ := m.preloaded.Get(key)
		info.PreloadEntries = append(info.PreloadEntries, domain.CacheEntryInfo{
			Path:     key,
			CachedAt: e.cachedAt,
		})
	}
	return info
}

// satisfiedLocked reports whether path is already live or held by either
// cache. Callers must hold m.mu.
func (m *Manager) satisfiedLocked(path string) bool {
	if m.currentPath == path {
		return true
	}
	if _, ok := m.preloaded.Get(path); ok {
		return true
	}
	_, ok := m.instances.Get(path)
	return ok
}

// acquire resolves an instance for path, trying acquisition sources in
// priority order: preload cache, in-flight channel, instance cache, fresh
// load.
func (m *Manager) acquire(ctx context.Context, path string, useCache bool) (ports.Instance, error) {
	m.mu.Lock()

	if e, ok := m.preloaded.Remove(path); ok {
		m.mu.Unlock()
		return m.instantiate(e.res)
	}

	if m.channel.State() == StateLoading && m.channel.Path() == path {
		m.mu.Unlock()
		if err := m.awaitChannel(ctx, path); err != nil {
			return nil, err
		}
		return m.takeChannelResult(path)
	}

	if useCache {
		if e, ok := m.instances.Remove(path); ok {
			if e.inst.Alive() {
				e.accessCount++
				e.cachedAt = time.Now()
				m.mu.Unlock()
				return e.inst, nil
			}
			// The host destroyed the instance behind our back. Treat the
			// hit as a miss and fall through to a fresh load.
			m.queue(removedEvent(path, domain.CacheInstances))
			m.mu.Unlock()
			m.flush()
			m.log.Warn(domain.ErrStaleCacheEntry.Error() + ": " + path)
			m.mu.Lock()
		}
	}

	err := m.channel.Start(path, m.asyncLoad)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if m.asyncLoad {
		if err := m.awaitChannel(ctx, path); err != nil {
			return nil, err
		}
	}
	return m.takeChannelResult(path)
}

// takeChannelResult consumes the channel's loaded resource. The resource
// is parked in the preload cache first so a racing switch to the same
// path can take it over, then consumed from there for instantiation.
func (m *Manager) takeChannelResult(path string) (ports.Instance, error) {
	m.mu.Lock()
	if res, err := m.channel.Consume(); err == nil {
		m.preloaded.Insert(path, &preloadEntry{res: res, cachedAt: time.Now()})
	}
	e, ok := m.preloaded.Remove(path)
	m.mu.Unlock()
	m.flush()

	if !ok {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrLoadFailed, "load result missing"), "path", path)
	}
	return m.instantiate(e.res)
}

func (m *Manager) instantiate(res *domain.Resource) (ports.Instance, error) {
	inst, err := m.factory.Instantiate(res)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrInstantiateFailed, err), "instantiating scene"), "path", res.Path)
	}
	return inst, nil
}

// transition swaps the active slot. The outgoing instance is detached and
// either parked in the instance cache or disposed; exactly one container
// ever owns an instance.
func (m *Manager) transition(path string, inst ports.Instance, useCache bool) {
	m.mu.Lock()

	old, oldPath := m.current, m.currentPath
	if old != nil && old != inst {
		m.view.Detach(old)
		if useCache && oldPath != "" && oldPath != path {
			m.instances.Insert(oldPath, &instanceEntry{inst: old, cachedAt: time.Now()})
			m.queue(cachedEvent(oldPath, domain.CacheInstances))
		} else {
			old.Dispose()
		}
	}

	m.previousPath = m.currentPath
	m.current = inst
	m.currentPath = path

	m.mu.Unlock()
	m.view.Attach(inst)
}

// awaitChannel polls the channel until its load for path terminates,
// yielding between polls. A cancelled context resets the channel so it
// is never left stuck in Loading.
func (m *Manager) awaitChannel(ctx context.Context, path string) error {
	for {
		m.mu.Lock()
		if m.channel.Path() != path {
			// A racing operation finished and repurposed the channel; the
			// result, if any, is in the preload cache by now.
			m.mu.Unlock()
			return nil
		}
		st, err := m.channel.Poll()
		m.mu.Unlock()

		if err != nil {
			return err
		}
		if st != StateLoading {
			return nil
		}

		select {
		case <-ctx.Done():
			m.mu.Lock()
			if m.channel.Path() == path {
				m.channel.Reset()
			}
			m.mu.Unlock()
			return ctx.Err()
		case <-time.After(m.pollInterval):
		}
	}
}

func (m *Manager) hide(ctx context.Context, p ports.Presentation, shown bool, path string) {
	if p == nil || !shown {
		return
	}
	if err := p.Hide(ctx); err != nil {
		m.log.Error(zerr.Wrap(err, domain.ErrPresentationFailed.Error()))
		return
	}
	m.emit(domain.Event{Kind: domain.EventLoadScreenHidden, Path: path})
}

// queue buffers an event raised while the manager lock is held. flush
// delivers buffered events once the lock is released.
func (m *Manager) queue(ev domain.Event) {
	m.pending = append(m.pending, ev)
}

func (m *Manager) flush() {
	m.mu.Lock()
	events := m.pending
	m.pending = nil
	observers := make([]ports.Observer, len(m.observers))
	copy(observers, m.observers)
	m.mu.Unlock()

	for _, ev := range events {
		for _, o := range observers {
			o.OnEvent(ev)
		}
	}
}

// emit delivers an event immediately. It must be called without the
// manager lock held.
func (m *Manager) emit(ev domain.Event) {
	m.mu.Lock()
	m.pending = append(m.pending, ev)
	m.mu.Unlock()
	m.flush()
}

func cachedEvent(path string, c domain.CacheName) domain.Event {
	return domain.Event{Kind: domain.EventSceneCached, Path: path, Cache: c}
}

func removedEvent(path string, c domain.CacheName) domain.Event {
	return domain.Event{Kind: domain.EventSceneRemoved, Path: path, Cache: c}
}

func failedEvent(kind domain.EventKind, path string, err error) domain.Event {
	return domain.Event{Kind: kind, Path: path, Err: err}
}
