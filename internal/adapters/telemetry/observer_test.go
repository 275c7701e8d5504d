package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/stage/internal/adapters/telemetry"
	"go.trai.ch/stage/internal/core/domain"
)

func newRecordedTracer(t *testing.T) (*telemetry.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return telemetry.NewTracer("stage-test"), recorder
}

func TestTracer_SwitchSpan(t *testing.T) {
	tr, recorder := newRecordedTracer(t)

	tr.OnEvent(domain.Event{Kind: domain.EventSwitchStarted, Path: "level.yaml", From: "menu.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventSceneCached, Path: "menu.yaml", Cache: domain.CacheInstances})
	tr.OnEvent(domain.Event{Kind: domain.EventSwitchCompleted, Path: "level.yaml"})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "switch level.yaml", span.Name())
	assert.NotEqual(t, codes.Error, span.Status().Code)

	require.Len(t, span.Events(), 1)
	assert.Equal(t, string(domain.EventSceneCached), span.Events()[0].Name)
}

func TestTracer_FailedSwitchRecordsError(t *testing.T) {
	tr, recorder := newRecordedTracer(t)

	failure := errors.New("scene not found")
	tr.OnEvent(domain.Event{Kind: domain.EventSwitchStarted, Path: "nope.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventSwitchFailed, Path: "nope.yaml", Err: failure})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, failure.Error(), spans[0].Status().Description)
}

func TestTracer_PreloadSpan(t *testing.T) {
	tr, recorder := newRecordedTracer(t)

	tr.OnEvent(domain.Event{Kind: domain.EventPreloadStarted, Path: "level.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventPreloadCompleted, Path: "level.yaml"})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "preload level.yaml", spans[0].Name())
}

func TestTracer_InterleavedOperations(t *testing.T) {
	tr, recorder := newRecordedTracer(t)

	// A preload completing while a switch is open must close its own span.
	tr.OnEvent(domain.Event{Kind: domain.EventSwitchStarted, Path: "a.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventPreloadStarted, Path: "b.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventPreloadCompleted, Path: "b.yaml"})
	tr.OnEvent(domain.Event{Kind: domain.EventSwitchCompleted, Path: "a.yaml"})

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "preload b.yaml", spans[0].Name())
	assert.Equal(t, "switch a.yaml", spans[1].Name())
}

func TestTracer_EndWithoutStartIsIgnored(t *testing.T) {
	tr, recorder := newRecordedTracer(t)

	tr.OnEvent(domain.Event{Kind: domain.EventSwitchCompleted, Path: "a.yaml"})
	assert.Empty(t, recorder.Ended())
}
