package usecase

import (
	"context"

	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"
)

// UserUsecase defines profile synchronization against the identity provider.
type UserUsecase interface {
	// SyncUser creates or refreshes the profile for a verified identity.
	// The admin flag follows union semantics: persisted flag OR allow-list
	// membership, never cleared by a sync.
	SyncUser(ctx context.Context, identity *service.Identity) (*entity.User, error)

	// GetUser retrieves the synced profile for an owner identity.
	GetUser(ctx context.Context, ownerID string) (*entity.User, error)
}
