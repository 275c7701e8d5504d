package ports

import "context"

// LiveView is the host's attach/detach mechanism for the active scene.
//
//go:generate mockgen -source=view.go -destination=mocks/mock_view.go -package=mocks
type LiveView interface {
	// Attach makes the instance part of the live view.
	Attach(inst Instance)

	// Detach removes the instance from the live view without disposing it.
	Detach(inst Instance)

	// AwaitReady blocks until the attached instance reports ready.
	// It returns the context error if ctx is cancelled first.
	AwaitReady(ctx context.Context, inst Instance) error
}
