package repository

import (
	"context"
	"errors"

	"streesilk/internal/domain/entity"
)

// ErrLineNotFound is returned when a conditional cart write targets a line
// that does not exist.
var ErrLineNotFound = errors.New("cart line not found")

// CartRepository defines persistence for the durable cart tier. Lines are
// keyed by the (owner identity, product identity) compound key.
type CartRepository interface {
	// FindByOwner retrieves every line of one owner's cart.
	FindByOwner(ctx context.Context, ownerID string) (entity.CartLines, error)

	// AddQuantity upserts a line in a single atomic store operation: the
	// quantity is incremented by line.Quantity, display fields are written
	// only when the line is created. Two concurrent calls for the same key
	// must both be reflected in the final quantity.
	AddQuantity(ctx context.Context, line *entity.CartLine) error

	// SetQuantity overwrites a line's quantity and updated timestamp using a
	// write conditioned on the line existing. Returns ErrLineNotFound when
	// the condition fails.
	SetQuantity(ctx context.Context, ownerID, productID string, quantity int, updatedAt int64) error

	// Delete removes a line unconditionally. Removing an absent line is a
	// no-op, not an error.
	Delete(ctx context.Context, ownerID, productID string) error
}
