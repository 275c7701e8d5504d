package ports

import "go.trai.ch/stage/internal/core/domain"

// Instance is a live scene object created from a Resource.
// The manager tracks the path externally; an instance carries none itself.
type Instance interface {
	// Alive reports whether the instance is still valid. The host may
	// destroy instances behind the manager's back; a dead instance found
	// in the cache is treated as a miss, never as a fatal error.
	Alive() bool

	// Dispose releases the instance's resources. Calling Dispose more
	// than once is undefined; the manager guarantees it disposes an
	// instance at most once.
	Dispose()
}

// Instantiator creates live scene instances from loaded resources.
//
//go:generate mockgen -source=instantiator.go -destination=mocks/mock_instantiator.go -package=mocks
type Instantiator interface {
	// Instantiate creates a fresh Instance from the given resource.
	Instantiate(res *domain.Resource) (Instance, error)
}
