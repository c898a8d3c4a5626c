package usecase

import (
	"context"

	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"
)

// OrderUsecase defines order submission and retrieval.
type OrderUsecase interface {
	// SubmitOrder turns a client-submitted cart snapshot into a durable
	// order record. Requires a verified identity; returns Unauthorized
	// otherwise. Email notification and event publishing are best-effort.
	SubmitOrder(ctx context.Context, identity *service.Identity, input *SubmitOrderInput) (*entity.Order, error)

	// GetOrder retrieves an order by id. Callers may only read their own
	// orders unless they hold the administrator flag.
	GetOrder(ctx context.Context, identity *service.Identity, id string) (*entity.Order, error)

	// OrderQR renders a PNG QR code linking to the order's tracking page.
	OrderQR(ctx context.Context, identity *service.Identity, id string) ([]byte, error)
}

// ContactUsecase defines contact-message submission and console listing.
type ContactUsecase interface {
	// SubmitContact persists a support inquiry. No identity is required;
	// when one is present it is linked to the message. Email notification
	// is best-effort.
	SubmitContact(ctx context.Context, identity *service.Identity, input *SubmitContactInput) (string, error)
}

// --- Input DTOs ---

// SubmitOrderItem is one snapshot line of the submitted cart.
type SubmitOrderItem struct {
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

// SubmitOrderInput defines the data required to submit an order.
type SubmitOrderInput struct {
	Items []SubmitOrderItem `json:"items" validate:"required,min=1,dive"`
}

// SubmitContactInput defines the data required to submit a contact message.
type SubmitContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}
