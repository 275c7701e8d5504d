// Package host provides an in-process scene host: it instantiates scenes
// as plain objects and tracks which instance is attached to the live
// view. It backs the demo CLI and doubles as a reference implementation
// of the Instantiator and LiveView ports.
package host

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Instance is a live in-process scene object.
type Instance struct {
	mu       sync.Mutex
	res      *domain.Resource
	alive    bool
	attached bool
}

// Alive reports whether the instance has not been disposed or killed.
func (i *Instance) Alive() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.alive
}

// Dispose marks the instance dead and releases its template reference.
func (i *Instance) Dispose() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.alive = false
	i.res = nil
}

// Kill destroys the instance behind the manager's back, the way an
// external host might. Used to exercise stale cache entry handling.
func (i *Instance) Kill() {
	i.Dispose()
}

// Resource returns the template the instance was created from, or nil
// after disposal.
func (i *Instance) Resource() *domain.Resource {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.res
}

// Attached reports whether the instance is part of the live view.
func (i *Instance) Attached() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.attached
}

func (i *Instance) setAttached(v bool) {
	i.mu.Lock()
	i.attached = v
	i.mu.Unlock()
}

// Host implements the Instantiator and LiveView ports in-process.
type Host struct {
	mu         sync.Mutex
	attached   ports.Instance
	readyDelay time.Duration
}

// New creates a Host whose instances report ready immediately.
func New() *Host {
	return &Host{}
}

// WithReadyDelay makes attached instances take d to report ready,
// simulating scene warm-up.
func (h *Host) WithReadyDelay(d time.Duration) *Host {
	h.readyDelay = d
	return h
}

// Instantiate creates a live instance from the resource.
func (h *Host) Instantiate(res *domain.Resource) (ports.Instance, error) {
	if res == nil {
		return nil, zerr.Wrap(domain.ErrInstantiateFailed, "nil resource")
	}
	return &Instance{res: res, alive: true}, nil
}

// Attach makes the instance the live one.
func (h *Host) Attach(inst ports.Instance) {
	h.mu.Lock()
	h.attached = inst
	h.mu.Unlock()
	if i, ok := inst.(*Instance); ok {
		i.setAttached(true)
	}
}

// Detach removes the instance from the live view without disposing it.
func (h *Host) Detach(inst ports.Instance) {
	h.mu.Lock()
	if h.attached == inst {
		h.attached = nil
	}
	h.mu.Unlock()
	if i, ok := inst.(*Instance); ok {
		i.setAttached(false)
	}
}

// AwaitReady blocks until the instance is ready or ctx is cancelled.
func (h *Host) AwaitReady(ctx context.Context, _ ports.Instance) error {
	if h.readyDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(h.readyDelay):
		return nil
	}
}

// Attached returns the instance currently in the live view.
func (h *Host) Attached() ports.Instance {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attached
}
