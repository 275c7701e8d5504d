// Package linear provides a synchronous, line-oriented renderer for the
// scene manager's event stream, suitable for CI and log capture.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
	"go.trai.ch/stage/internal/ui/style"
)

var _ ports.Observer = (*Renderer)(nil)

// Renderer prints one line per manager event in chronological order.
type Renderer struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:   w,
		out: termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
	}
}

// WithProfile overrides the detected color profile.
func (r *Renderer) WithProfile(p termenv.Profile) *Renderer {
	r.out = termenv.NewOutput(r.w, termenv.WithProfile(p))
	return r
}

// colorProfile returns ANSI for broad CI compatibility, Ascii under NO_COLOR.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// OnEvent renders a single manager event.
func (r *Renderer) OnEvent(ev domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev.Kind {
	case domain.EventSwitchStarted:
		from := ev.From
		if from == "" {
			from = "(none)"
		}
		r.line(style.Arrow, style.Blue, "switch", from+" "+style.Arrow+" "+ev.Path)
	case domain.EventSwitchCompleted:
		r.line(style.Check, style.Green, "active", ev.Path)
	case domain.EventSwitchFailed:
		r.fail("switch", ev)
	case domain.EventPreloadStarted:
		r.line(style.Circle, style.Slate, "preload", ev.Path)
	case domain.EventPreloadCompleted:
		r.line(style.Dot, style.Green, "preloaded", ev.Path)
	case domain.EventPreloadFailed:
		r.fail("preload", ev)
	case domain.EventSceneCached:
		r.line(style.Dot, style.Teal, "cached", ev.Path+" ("+string(ev.Cache)+")")
	case domain.EventSceneRemoved:
		r.line(style.Cross, style.Slate, "removed", ev.Path+" ("+string(ev.Cache)+")")
	case domain.EventLoadScreenShown:
		r.line(style.Dot, style.Slate, "loading screen", "shown")
	case domain.EventLoadScreenHidden:
		r.line(style.Dot, style.Slate, "loading screen", "hidden")
	}
}

func (r *Renderer) fail(op string, ev domain.Event) {
	detail := ev.Path
	if ev.Err != nil {
		detail += ": " + ev.Err.Error()
	}
	r.line(style.Cross, style.Red, op+" failed", detail)
}

func (r *Renderer) line(icon string, color lipgloss.Color, label, detail string) {
	prefix := r.out.String(icon + " " + label).Foreground(termenv.RGBColor(string(color)))
	fmt.Fprintf(r.w, "%s %s\n", prefix.String(), detail)
}
