package usecase

import (
	"context"

	"streesilk/internal/domain/entity"
)

// CartUsecase defines durable-tier cart operations for an authenticated
// owner, plus the drain that reconciles a submitted anonymous cart into the
// durable tier.
type CartUsecase interface {
	// GetCart retrieves the owner's full cart with derived totals.
	GetCart(ctx context.Context, ownerID string) (*CartView, error)

	// AddItem adds quantity of a product to the owner's cart. An existing
	// line for the same product absorbs the quantity atomically.
	AddItem(ctx context.Context, ownerID string, input *AddCartItemInput) error

	// UpdateQuantity overwrites a line's quantity. A quantity of zero or
	// less removes the line instead.
	UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) error

	// RemoveItem removes a line. Removing an absent line is a no-op.
	RemoveItem(ctx context.Context, ownerID, productID string) error

	// ClearCart removes every line, one delete per line. A partial failure
	// leaves the remaining lines in place and returns the error.
	ClearCart(ctx context.Context, ownerID string) error

	// MergeLocalCart drains a client-submitted anonymous cart into the
	// owner's durable cart and returns the merged result. Lines already
	// drained by an earlier call are absorbed by quantity summing, so a
	// retried drain never loses pending lines.
	MergeLocalCart(ctx context.Context, ownerID string, lines []LocalCartLine) (*CartView, error)
}

// --- Input DTOs ---

// AddCartItemInput carries the product snapshot captured at add-time.
type AddCartItemInput struct {
	ProductID     string `json:"productId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Price         int64  `json:"price" validate:"gte=0"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
}

// LocalCartLine is one line of a client-held anonymous cart submitted for
// draining.
type LocalCartLine struct {
	ProductID     string `json:"productId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Price         int64  `json:"price" validate:"gte=0"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image,omitempty"`
	Category      string `json:"category,omitempty"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	Size          string `json:"size,omitempty"`
	Color         string `json:"color,omitempty"`
}

// CartView is a cart read model with derived totals.
type CartView struct {
	Items entity.CartLines `json:"items"`
	Total int64            `json:"total"`
	Count int              `json:"count"`
}
