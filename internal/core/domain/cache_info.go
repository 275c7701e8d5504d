package domain

import "time"

// CacheEntryInfo describes a single cached scene for diagnostics.
type CacheEntryInfo struct {
	// Path is the scene path the entry is keyed by.
	Path string
	// CachedAt is when the entry was (last) inserted.
	CachedAt time.Time
	// AccessCount records how many times the entry was reused before now.
	AccessCount int
}

// CacheInfo is a point-in-time snapshot of both caches.
// Entry slices are ordered least-recently-used first, so the slice order
// is the eviction order.
type CacheInfo struct {
	InstanceEntries []CacheEntryInfo
	InstanceMax     int
	PreloadEntries  []CacheEntryInfo
	PreloadMax      int
}
