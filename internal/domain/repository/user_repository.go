package repository

import (
	"context"
	"errors"

	"streesilk/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence for synced identity profiles, keyed by
// the identity provider's subject id.
type UserRepository interface {
	// FindByOwnerID retrieves a single profile by subject id.
	FindByOwnerID(ctx context.Context, ownerID string) (*entity.User, error)

	// Put upserts a profile record.
	Put(ctx context.Context, user *entity.User) error
}
