// Package domain contains core domain types for scene lifecycle management.
package domain

// Resource is an immutable scene template loaded from storage.
// It is identified by the path it was loaded from; the manager never
// mutates a Resource after the resolver hands it over.
type Resource struct {
	// Path is the storage key the resource was resolved from.
	Path string
	// Name is the scene's declared name from its template.
	Name string
	// Kind classifies the scene (e.g. "ui", "world", "overlay").
	Kind string
	// Props holds arbitrary template properties for the instantiator.
	Props map[string]any
	// Checksum is a fingerprint of the raw template bytes,
	// computed by the resolver at load time.
	Checksum uint64
}
