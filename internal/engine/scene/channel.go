// Package scene implements the scene lifecycle engine: a single-flight
// load channel and a manager that owns the active slot and both caches.
package scene

import (
	"errors"

	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/zerr"
)

// ChannelState is the state of the load channel.
type ChannelState uint8

const (
	// StateNotLoaded means the channel is idle and may accept a new load.
	StateNotLoaded ChannelState = iota
	// StateLoading means a load is in flight for the channel's path.
	StateLoading
	// StateLoaded means the load completed and the resource awaits consumption.
	StateLoaded
	// StateInstantiated means the loaded resource was consumed; the channel
	// may accept a new load.
	StateInstantiated
)

// String returns a readable name for the state.
func (s ChannelState) String() string {
	switch s {
	case StateNotLoaded:
		return "not_loaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateInstantiated:
		return "instantiated"
	default:
		return "unknown"
	}
}

// Channel tracks the single in-flight (or just-completed) load of the
// whole manager. There is exactly one Channel per Manager; a load for a
// second path while one is in flight fails fast with ErrChannelBusy
// instead of queueing. Channel is not self-locking; the manager guards it.
type Channel struct {
	resolver ports.Resolver

	path     string
	state    ChannelState
	resource *domain.Resource
	progress float64
	async    bool
}

// NewChannel creates an idle channel backed by the given resolver.
func NewChannel(resolver ports.Resolver) *Channel {
	return &Channel{resolver: resolver}
}

// State returns the channel state.
func (c *Channel) State() ChannelState { return c.state }

// Path returns the path of the current or last load.
func (c *Channel) Path() string { return c.path }

// Progress returns the last observed load progress in [0, 1].
func (c *Channel) Progress() float64 { return c.progress }

// Start begins a load for path. In synchronous mode it resolves
// immediately, leaving the channel Loaded on success. In asynchronous
// mode it starts the background load and leaves the channel Loading;
// callers advance it with Poll.
//
// Starting the same path again while it is Loading or Loaded is a no-op.
// Starting a different path while one is Loading fails with ErrChannelBusy.
func (c *Channel) Start(path string, async bool) error {
	switch c.state {
	case StateLoading, StateLoaded:
		if c.path == path {
			return nil
		}
		if c.state == StateLoading {
			return zerr.With(zerr.With(
				zerr.Wrap(domain.ErrChannelBusy, "starting load"),
				"loading", c.path), "requested", path)
		}
		// A Loaded result for another path was never consumed; it is
		// stale and the new load takes over.
		c.discard()
	case StateNotLoaded, StateInstantiated:
	}

	c.path = path
	c.resource = nil
	c.progress = 0
	c.async = async

	if !async {
		res, err := c.resolver.Load(path)
		if err != nil {
			c.fail()
			return zerr.With(zerr.Wrap(
				errors.Join(domain.ErrLoadFailed, err), "loading scene"), "path", path)
		}
		c.resource = res
		c.progress = 1
		c.state = StateLoaded
		return nil
	}

	if err := c.resolver.LoadAsyncStart(path); err != nil {
		c.fail()
		return zerr.With(zerr.Wrap(
			errors.Join(domain.ErrLoadFailed, err), "starting load"), "path", path)
	}
	c.state = StateLoading
	return nil
}

// Poll advances an asynchronous load. When the loader reports success the
// channel transitions to Loaded; on failure it transitions to NotLoaded
// and the error is surfaced. Polling a channel that is not Loading
// returns its state unchanged.
func (c *Channel) Poll() (ChannelState, error) {
	if c.state != StateLoading {
		return c.state, nil
	}

	poll := c.resolver.LoadAsyncPoll(c.path)
	c.progress = poll.Progress

	switch poll.Status {
	case ports.LoadDone:
		c.resource = poll.Resource
		c.progress = 1
		c.state = StateLoaded
	case ports.LoadFailed:
		path := c.path
		c.fail()
		return StateNotLoaded, zerr.With(zerr.Wrap(
			errors.Join(domain.ErrLoadFailed, poll.Err), "loading scene"), "path", path)
	case ports.LoadInProgress:
	}

	return c.state, nil
}

// Consume hands ownership of the loaded resource to the caller and marks
// the channel consumed so a new load may start. It fails with
// ErrNothingToConsume unless the channel is Loaded.
func (c *Channel) Consume() (*domain.Resource, error) {
	if c.state != StateLoaded {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrNothingToConsume, "consuming load result"),
			"state", c.state.String())
	}
	res := c.resource
	c.resource = nil
	c.state = StateInstantiated
	return res, nil
}

// Reset force-transitions the channel to NotLoaded, discarding any
// in-flight or loaded resource. Cache clears call this so a stale channel
// never blocks a later preload of the same path.
func (c *Channel) Reset() {
	c.discard()
}

func (c *Channel) fail() {
	c.discard()
}

func (c *Channel) discard() {
	c.path = ""
	c.resource = nil
	c.progress = 0
	c.state = StateNotLoaded
}
