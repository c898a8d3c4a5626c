package impl

import (
	"context"
	"testing"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	mockRepo "streesilk/internal/mocks/repository"
	"streesilk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo, &config.Config{}, newTestLogger())

	return service, productRepo
}

func testCatalog() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Muga Silk Saree", Description: "Golden muga weave", Category: "Muga", Price: 1250000, IsActive: true, IsNew: true, CreatedAt: 400},
		{ID: "p2", Name: "Paat Mekhela Chador", Description: "Classic white paat", Category: "Paat", Price: 850000, IsActive: true, IsSale: true, CreatedAt: 300},
		{ID: "p3", Name: "Silk Stole", Description: "Lightweight stole", Category: "Silk", Price: 150000, IsActive: true, CreatedAt: 200},
		{ID: "p4", Name: "Archived Saree", Description: "No longer sold", Category: "Muga", Price: 500000, IsActive: false, CreatedAt: 100},
	}
}

func TestCatalogService_ListProducts_DefaultsNewestFirst(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil)

	page, err := service.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Products, 4)
	assert.Equal(t, "p1", page.Products[0].ID)
	assert.Equal(t, "p4", page.Products[3].ID)
	assert.Equal(t, usecase.DefaultPageSize, page.PageSize)
	assert.Equal(t, 1, page.Page)
}

func TestCatalogService_ListProducts_ActiveOnly(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil)

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, page.Products, 3)
	for _, p := range page.Products {
		assert.True(t, p.IsActive)
	}
}

func TestCatalogService_ListProducts_CategoryAndFlags(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil).Times(3)

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{Category: "Muga", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.Products[0].ID)

	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{OnSale: true})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p2", page.Products[0].ID)

	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{NewArrival: true})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.Products[0].ID)
}

func TestCatalogService_ListProducts_QueryMatchesNameAndDescription(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil).Times(2)

	// Case-insensitive name match.
	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{Query: "MEKHELA"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p2", page.Products[0].ID)

	// Description match.
	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{Query: "golden"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.Products[0].ID)
}

func TestCatalogService_ListProducts_PriceSort(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil).Times(2)

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{Sort: usecase.SortPriceLow})
	require.NoError(t, err)
	assert.Equal(t, "p3", page.Products[0].ID)
	assert.Equal(t, "p1", page.Products[3].ID)

	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{Sort: usecase.SortPriceHigh})
	require.NoError(t, err)
	assert.Equal(t, "p1", page.Products[0].ID)
	assert.Equal(t, "p3", page.Products[3].ID)
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil).Times(3)

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{PageSize: 2, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages)

	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{PageSize: 2, Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, "p3", page.Products[0].ID)

	// Out-of-range page returns an empty slice, not an error.
	page, err = service.ListProducts(ctx, &usecase.ListProductsOptions{PageSize: 2, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestCatalogService_ListProducts_Limit(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(testCatalog(), nil)

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, 2, page.Total)
}

func TestCatalogService_ListProducts_ScanFailureServesEmptyPage(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("table unavailable"))

	page, err := service.ListProducts(ctx, &usecase.ListProductsOptions{Page: 3, PageSize: 8})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 8, page.PageSize)
}

func TestCatalogService_GetProduct_Success(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindByID(ctx, "p1").Return(&entity.Product{ID: "p1", Name: "Muga Silk Saree"}, nil)

	product, err := service.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Muga Silk Saree", product.Name)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := createTestCatalogService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
