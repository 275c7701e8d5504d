package ports

import "context"

// Presentation is the loading-screen collaborator shown while a switch is
// in flight. A nil Presentation passed to the manager skips the loading
// screen entirely; it is the "no-transition" sentinel.
//
//go:generate mockgen -source=presentation.go -destination=mocks/mock_presentation.go -package=mocks
type Presentation interface {
	// Show blocks until the loading screen is fully visible.
	Show(ctx context.Context) error

	// Hide blocks until the loading screen is fully hidden.
	Hide(ctx context.Context) error
}
