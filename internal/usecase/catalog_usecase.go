// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"streesilk/internal/domain/entity"
)

// Sort orders accepted by ListProducts. Newest-first is the default.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// DefaultPageSize is the catalog page size when the caller does not set one.
const DefaultPageSize = 16

// CatalogUsecase defines the interface for public catalog queries.
type CatalogUsecase interface {
	// ListProducts applies filters, sorting and pagination over the full
	// catalog. A store read failure degrades to an empty result page.
	ListProducts(ctx context.Context, options *ListProductsOptions) (*ProductPage, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
}

// --- Input DTOs ---

// ListProductsOptions defines the catalog query surface. Zero values mean
// "no constraint".
type ListProductsOptions struct {
	// ActiveOnly excludes products whose active flag is false.
	ActiveOnly bool `json:"activeOnly"`

	// Category filters by exact category match.
	Category string `json:"category,omitempty"`

	// Query filters by case-insensitive substring match on name or
	// description.
	Query string `json:"query,omitempty"`

	// OnSale keeps only products flagged as on sale.
	OnSale bool `json:"onSale"`

	// NewArrival keeps only products flagged as new.
	NewArrival bool `json:"newArrival"`

	// Sort is one of the Sort* constants; unknown values fall back to newest.
	Sort string `json:"sort,omitempty"`

	// Limit truncates the filtered set before pagination. 0 means no limit.
	Limit int `json:"limit,omitempty"`

	// Page is 1-based. Values below 1 are treated as 1.
	Page int `json:"page,omitempty"`

	// PageSize defaults to DefaultPageSize when 0.
	PageSize int `json:"pageSize,omitempty"`
}

// ProductPage is one page of a catalog query result.
type ProductPage struct {
	Products   []entity.Product `json:"products"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}
