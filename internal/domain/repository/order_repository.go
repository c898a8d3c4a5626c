package repository

import (
	"context"
	"errors"

	"streesilk/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence for immutable purchase records.
// Orders are created once and never deleted by the storefront.
type OrderRepository interface {
	// Put persists a new order record.
	Put(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its identity.
	FindByID(ctx context.Context, id string) (*entity.Order, error)
}
