package repository

import (
	"context"

	"streesilk/internal/domain/entity"
)

// ContactRepository defines persistence for support inquiries. Messages are
// created on submission and never mutated by the storefront afterwards.
type ContactRepository interface {
	// Put persists a new contact message.
	Put(ctx context.Context, message *entity.ContactMessage) error

	// FindAll retrieves every stored message, newest first, for the admin
	// console.
	FindAll(ctx context.Context) ([]entity.ContactMessage, error)
}
