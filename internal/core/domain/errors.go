package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when a scene path cannot be resolved by the loader.
	ErrTargetNotFound = zerr.New("scene not found")

	// ErrLoadFailed is returned when the underlying loader reports a failure.
	ErrLoadFailed = zerr.New("scene load failed")

	// ErrChannelBusy is returned when a load is requested while a different path is already loading.
	ErrChannelBusy = zerr.New("load channel busy")

	// ErrNothingToConsume is returned when the load channel holds no completed resource.
	ErrNothingToConsume = zerr.New("nothing to consume from load channel")

	// ErrInvalidConfig is returned when a cache bound is configured below 1.
	ErrInvalidConfig = zerr.New("cache size must be at least 1")

	// ErrStaleCacheEntry is returned when a cached instance was destroyed externally.
	ErrStaleCacheEntry = zerr.New("cached scene instance is no longer alive")

	// ErrInstantiateFailed is returned when a loaded resource cannot be instantiated.
	ErrInstantiateFailed = zerr.New("scene instantiation failed")

	// ErrPresentationFailed is returned when the loading screen cannot be shown or hidden.
	ErrPresentationFailed = zerr.New("presentation failed")

	// ErrTemplateParseFailed is returned when a scene template file cannot be parsed.
	ErrTemplateParseFailed = zerr.New("failed to parse scene template")

	// ErrScenarioReadFailed is returned when a demo scenario file cannot be read.
	ErrScenarioReadFailed = zerr.New("failed to read scenario file")

	// ErrScenarioParseFailed is returned when a demo scenario file cannot be parsed.
	ErrScenarioParseFailed = zerr.New("failed to parse scenario file")

	// ErrUnknownScenarioStep is returned when a scenario step names an unsupported operation.
	ErrUnknownScenarioStep = zerr.New("unknown scenario step")

	// ErrScenarioFailed is returned when a scenario run aborts on a failing step.
	ErrScenarioFailed = zerr.New("scenario execution failed")
)
