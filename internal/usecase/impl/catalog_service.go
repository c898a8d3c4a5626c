package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	"streesilk/internal/usecase"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface. The catalog has no
// server-side index beyond the primary key; every query is a full read
// filtered, sorted and paginated in memory.
type catalogService struct {
	productRepo repository.ProductRepository
	pageSize    int
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	productRepo repository.ProductRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	pageSize := cfg.Catalog.PageSize
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}

	return &catalogService{
		productRepo: productRepo,
		pageSize:    pageSize,
		logger:      logger,
	}
}

// ListProducts applies filters, sorting and pagination over the full catalog.
// A store read failure degrades to an empty page rather than an error: the
// storefront renders an empty shelf instead of failing the whole page.
func (srv *catalogService) ListProducts(ctx context.Context, options *usecase.ListProductsOptions) (*usecase.ProductPage, error) {
	if options == nil {
		options = &usecase.ListProductsOptions{}
	}

	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		srv.logger.Error("catalog read failed, serving empty page", slog.Any("error", err))

		return srv.emptyPage(options), nil
	}

	filtered := filterProducts(products, options)
	sortProducts(filtered, options.Sort)

	if options.Limit > 0 && len(filtered) > options.Limit {
		filtered = filtered[:options.Limit]
	}

	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = srv.pageSize
	}
	page := options.Page
	if page < 1 {
		page = 1
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &usecase.ProductPage{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetProduct retrieves a single product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return product, nil
}

func (srv *catalogService) emptyPage(options *usecase.ListProductsOptions) *usecase.ProductPage {
	pageSize := options.PageSize
	if pageSize <= 0 {
		pageSize = srv.pageSize
	}
	page := options.Page
	if page < 1 {
		page = 1
	}

	return &usecase.ProductPage{
		Products: []entity.Product{},
		Page:     page,
		PageSize: pageSize,
	}
}

func filterProducts(products []entity.Product, options *usecase.ListProductsOptions) []entity.Product {
	query := strings.ToLower(strings.TrimSpace(options.Query))
	filtered := make([]entity.Product, 0, len(products))

	for _, p := range products {
		if options.ActiveOnly && !p.IsActive {
			continue
		}
		if options.Category != "" && p.Category != options.Category {
			continue
		}
		if options.OnSale && !p.IsSale {
			continue
		}
		if options.NewArrival && !p.IsNew {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// sortProducts orders the filtered set. Unknown sort keys fall back to
// newest-first. Sorting is stable so equal keys keep their scan order.
func sortProducts(products []entity.Product, sortKey string) {
	switch sortKey {
	case usecase.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case usecase.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt > products[j].CreatedAt
		})
	}
}
