// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stage/internal/core/domain"

// LoadStatus is the state of an asynchronous load reported by the resolver.
type LoadStatus uint8

const (
	// LoadInProgress indicates the load has started but not finished.
	LoadInProgress LoadStatus = iota
	// LoadDone indicates the load finished and the resource is available.
	LoadDone
	// LoadFailed indicates the load terminated with an error.
	LoadFailed
)

// LoadPoll is a snapshot of an asynchronous load.
type LoadPoll struct {
	Status   LoadStatus
	Progress float64
	// Resource is set only when Status is LoadDone.
	Resource *domain.Resource
	// Err is set only when Status is LoadFailed.
	Err error
}

// Resolver loads scene templates from storage.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Exists reports whether a scene template exists at the given path.
	Exists(path string) bool

	// Load reads and parses the template at path synchronously.
	Load(path string) (*domain.Resource, error)

	// LoadAsyncStart begins loading the template at path in the background.
	// Starting an already in-flight path is a no-op.
	LoadAsyncStart(path string) error

	// LoadAsyncPoll reports the state of the background load for path.
	// Once LoadDone or LoadFailed has been observed the resolver may
	// discard its bookkeeping for the path.
	LoadAsyncPoll(path string) LoadPoll
}
