package usecase

import (
	"context"

	"streesilk/internal/domain/entity"
	"streesilk/internal/domain/service"
)

// AdminUsecase defines catalog management and console operations. Every
// operation is guarded by the admin policy; a caller failing the check gets
// Unauthorized regardless of which operation it attempted.
type AdminUsecase interface {
	// CreateProduct creates a catalog entry with a fresh identity.
	CreateProduct(ctx context.Context, identity *service.Identity, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct merges the provided fields into an existing product.
	UpdateProduct(ctx context.Context, identity *service.Identity, id string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, identity *service.Identity, id string) error

	// ListContactMessages retrieves submitted contact messages, newest
	// first, for the admin console.
	ListContactMessages(ctx context.Context, identity *service.Identity) ([]entity.ContactMessage, error)
}

// UploadUsecase defines admin-guarded product image uploads.
type UploadUsecase interface {
	// UploadProductImage validates and stores an image, returning its
	// public URL.
	UploadProductImage(ctx context.Context, identity *service.Identity, filename string, data []byte) (string, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Price         int64    `json:"price" validate:"required,gt=0"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category" validate:"required"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	IsNew         bool     `json:"isNew"`
	IsSale        bool     `json:"isSale"`
	IsActive      *bool    `json:"isActive,omitempty"`
	Stock         int      `json:"stock,omitempty"`
}

// UpdateProductInput defines the fields an update may overwrite. Nil fields
// are left untouched.
type UpdateProductInput struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Price         *int64    `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice *int64    `json:"originalPrice,omitempty"`
	Image         *string   `json:"image,omitempty"`
	Images        *[]string `json:"images,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Sizes         *[]string `json:"sizes,omitempty"`
	Colors        *[]string `json:"colors,omitempty"`
	IsNew         *bool     `json:"isNew,omitempty"`
	IsSale        *bool     `json:"isSale,omitempty"`
	IsActive      *bool     `json:"isActive,omitempty"`
	Stock         *int      `json:"stock,omitempty"`
}
