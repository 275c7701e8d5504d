// Package telemetry records OpenTelemetry spans for scene manager
// operations by subscribing to the manager's event stream.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/stage/internal/core/domain"
	"go.trai.ch/stage/internal/core/ports"
)

var _ ports.Observer = (*Tracer)(nil)

// Tracer turns manager events into OTel spans: one span per switch and
// per preload, with cache and loading-screen activity recorded as span
// events on whichever operation is open for the path.
type Tracer struct {
	tracer trace.Tracer

	mu    sync.Mutex
	open  map[string]trace.Span // one span per in-flight operation key
	last  trace.Span            // most recently started, for cache events
}

// NewTracer creates a Tracer using the given instrumentation name.
func NewTracer(name string) *Tracer {
	return &Tracer{
		tracer: otel.Tracer(name),
		open:   make(map[string]trace.Span),
	}
}

// OnEvent records the event against the appropriate span.
func (t *Tracer) OnEvent(ev domain.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Kind {
	case domain.EventSwitchStarted:
		t.begin("switch "+ev.Path, "switch:"+ev.Path,
			attribute.String("scene.path", ev.Path),
			attribute.String("scene.from", ev.From),
		)
	case domain.EventSwitchCompleted:
		t.end("switch:"+ev.Path, nil)
	case domain.EventSwitchFailed:
		t.end("switch:"+ev.Path, ev.Err)
	case domain.EventPreloadStarted:
		t.begin("preload "+ev.Path, "preload:"+ev.Path,
			attribute.String("scene.path", ev.Path),
		)
	case domain.EventPreloadCompleted:
		t.end("preload:"+ev.Path, nil)
	case domain.EventPreloadFailed:
		t.end("preload:"+ev.Path, ev.Err)
	case domain.EventSceneCached, domain.EventSceneRemoved,
		domain.EventLoadScreenShown, domain.EventLoadScreenHidden:
		t.annotate(ev)
	}
}

func (t *Tracer) begin(name, key string, attrs ...attribute.KeyValue) {
	_, span := t.tracer.Start(context.Background(), name,
		trace.WithAttributes(attrs...))
	t.open[key] = span
	t.last = span
}

func (t *Tracer) end(key string, err error) {
	span, ok := t.open[key]
	if !ok {
		return
	}
	delete(t.open, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	if t.last == span {
		t.last = nil
	}
}

// annotate attaches cache/presentation activity to the most recently
// started operation span, if one is still open.
func (t *Tracer) annotate(ev domain.Event) {
	if t.last == nil || !t.last.IsRecording() {
		return
	}
	attrs := []attribute.KeyValue{attribute.String("scene.path", ev.Path)}
	if ev.Cache != "" {
		attrs = append(attrs, attribute.String("scene.cache", string(ev.Cache)))
	}
	t.last.AddEvent(string(ev.Kind), trace.WithAttributes(attrs...))
}
