// Package presentation adapts heterogeneous loading-screen objects onto
// the single Show/Hide contract the scene manager calls.
package presentation

import (
	"context"
	"time"

	"go.trai.ch/stage/internal/core/ports"
)

// shower is the conventional show/hide surface.
type shower interface {
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
}

// fader is the fade-in/fade-out surface some hosts expose instead.
type fader interface {
	FadeIn(ctx context.Context) error
	FadeOut(ctx context.Context) error
}

// Adapt maps an external loading-screen object onto ports.Presentation.
// Objects exposing Show/Hide are used directly; objects exposing
// FadeIn/FadeOut are wrapped; anything else degrades to a no-op.
func Adapt(v any) ports.Presentation {
	switch p := v.(type) {
	case shower:
		return showAdapter{p}
	case fader:
		return fadeAdapter{p}
	default:
		return Noop{}
	}
}

type showAdapter struct{ s shower }

func (a showAdapter) Show(ctx context.Context) error { return a.s.Show(ctx) }
func (a showAdapter) Hide(ctx context.Context) error { return a.s.Hide(ctx) }

type fadeAdapter struct{ f fader }

func (a fadeAdapter) Show(ctx context.Context) error { return a.f.FadeIn(ctx) }
func (a fadeAdapter) Hide(ctx context.Context) error { return a.f.FadeOut(ctx) }

// Noop is a presentation that shows and hides instantly. It is distinct
// from passing a nil Presentation to the manager: Noop still produces
// shown/hidden events, nil skips the loading screen entirely.
type Noop struct{}

// Show reports the loading screen visible immediately.
func (Noop) Show(context.Context) error { return nil }

// Hide reports the loading screen hidden immediately.
func (Noop) Hide(context.Context) error { return nil }

// Timed simulates a fade by sleeping for a fixed duration on each side.
type Timed struct {
	// Duration is how long each of Show and Hide takes.
	Duration time.Duration
}

// Show blocks for the configured duration or until ctx is cancelled.
func (t Timed) Show(ctx context.Context) error { return t.wait(ctx) }

// Hide blocks for the configured duration or until ctx is cancelled.
func (t Timed) Hide(ctx context.Context) error { return t.wait(ctx) }

func (t Timed) wait(ctx context.Context) error {
	if t.Duration <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(t.Duration):
		return nil
	}
}
