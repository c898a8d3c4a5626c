// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"streesilk/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product by its identity.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindAll retrieves the full unfiltered product set. The catalog query
	// engine filters, sorts and paginates in memory; there is no server-side
	// index beyond the primary key.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// Put upserts a product record, overwriting any existing record with
	// the same identity.
	Put(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Deleting an absent product is not an error.
	Delete(ctx context.Context, id string) error
}
