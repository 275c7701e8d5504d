package ports

import "go.trai.ch/stage/internal/core/domain"

// Observer receives manager event notifications.
// Delivery is synchronous with the emitting operation and the order of
// delivery across multiple observers is unspecified. Observers must not
// call back into the manager.
//
//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type Observer interface {
	OnEvent(ev domain.Event)
}
