package domain

// EventKind identifies the type of a manager notification.
type EventKind string

const (
	// EventPreloadStarted fires when a preload begins for a path.
	EventPreloadStarted EventKind = "preload_started"
	// EventPreloadCompleted fires when a preload finishes and the resource is cached.
	EventPreloadCompleted EventKind = "preload_completed"
	// EventPreloadFailed fires when a preload aborts with an error.
	EventPreloadFailed EventKind = "preload_failed"
	// EventSwitchStarted fires at the beginning of a switch, before any cache is consulted.
	EventSwitchStarted EventKind = "switch_started"
	// EventSwitchCompleted fires when a switch finishes, including the idempotent same-path case.
	EventSwitchCompleted EventKind = "switch_completed"
	// EventSwitchFailed fires when a switch aborts with an error.
	EventSwitchFailed EventKind = "switch_failed"
	// EventSceneCached fires when a scene enters one of the two caches.
	EventSceneCached EventKind = "scene_cached"
	// EventSceneRemoved fires when a cache entry is evicted or cleared away.
	EventSceneRemoved EventKind = "scene_removed"
	// EventLoadScreenShown fires after the presentation reports it is visible.
	EventLoadScreenShown EventKind = "load_screen_shown"
	// EventLoadScreenHidden fires after the presentation reports it is hidden.
	EventLoadScreenHidden EventKind = "load_screen_hidden"
)

// CacheName distinguishes the two caches in cache-related events.
type CacheName string

const (
	// CacheInstances is the bounded store of instantiated-but-inactive scenes.
	CacheInstances CacheName = "instances"
	// CachePreloaded is the bounded store of loaded-but-not-instantiated resources.
	CachePreloaded CacheName = "preloaded"
)

// Event is a fire-and-forget notification emitted by the scene manager.
// Delivery is synchronous with the emitting operation; observers must not
// block and must not call back into the manager.
type Event struct {
	Kind EventKind
	// Path is the scene path the event concerns.
	Path string
	// From is the previously active path, set on switch_started.
	From string
	// Cache names the affected cache for scene_cached and scene_removed.
	Cache CacheName
	// Err carries the failure for preload_failed and switch_failed.
	Err error
}
