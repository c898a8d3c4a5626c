package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	mockRepo "streesilk/internal/mocks/repository"
	"streesilk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	service := NewCartService(cartRepo, newTestLogger())

	return service, cartRepo
}

func TestCartService_GetCart_DerivesTotals(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(entity.CartLines{
		{ProductID: "p1", Price: 250000, Quantity: 2},
		{ProductID: "p2", Price: 100000, Quantity: 1},
	}, nil)

	view, err := service.GetCart(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, int64(600000), view.Total)
	assert.Equal(t, 3, view.Count)
}

func TestCartService_GetCart_StoreError(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(nil, errors.New("throughput exceeded"))

	view, err := service.GetCart(ctx, "owner-1")
	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestCartService_AddItem_Success(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().AddQuantity(ctx, mock.Anything).Run(func(_ context.Context, line *entity.CartLine) {
		assert.Equal(t, "owner-1", line.OwnerID)
		assert.Equal(t, "p1", line.ProductID)
		assert.Equal(t, "p1", line.ID)
		assert.Equal(t, 2, line.Quantity)
		assert.Positive(t, line.CreatedAt)
	}).Return(nil)

	err := service.AddItem(ctx, "owner-1", &usecase.AddCartItemInput{
		ProductID: "p1",
		Name:      "Muga Silk Saree",
		Price:     1250000,
		Quantity:  2,
	})
	require.NoError(t, err)
}

func TestCartService_AddItem_RejectsZeroQuantity(t *testing.T) {
	service, _ := createTestCartService(t)

	err := service.AddItem(context.Background(), "owner-1", &usecase.AddCartItemInput{
		ProductID: "p1",
		Name:      "Muga Silk Saree",
		Quantity:  0,
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_UpdateQuantity_ZeroRemoves(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().Delete(ctx, "owner-1", "p1").Return(nil)

	err := service.UpdateQuantity(ctx, "owner-1", "p1", 0)
	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_Overwrites(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().SetQuantity(ctx, "owner-1", "p1", 5, mock.Anything).Return(nil)

	err := service.UpdateQuantity(ctx, "owner-1", "p1", 5)
	require.NoError(t, err)
}

func TestCartService_UpdateQuantity_NotFound(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().SetQuantity(ctx, "owner-1", "missing", 3, mock.Anything).
		Return(repository.ErrLineNotFound)

	err := service.UpdateQuantity(ctx, "owner-1", "missing", 3)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCartService_RemoveItem_AbsentIsNoop(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().Delete(ctx, "owner-1", "ghost").Return(nil)

	err := service.RemoveItem(ctx, "owner-1", "ghost")
	require.NoError(t, err)
}

func TestCartService_ClearCart_DeletesEveryLine(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(entity.CartLines{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}, nil)
	cartRepo.EXPECT().Delete(ctx, "owner-1", "p1").Return(nil)
	cartRepo.EXPECT().Delete(ctx, "owner-1", "p2").Return(nil)

	err := service.ClearCart(ctx, "owner-1")
	require.NoError(t, err)
}

func TestCartService_ClearCart_PartialFailureStops(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(entity.CartLines{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}, nil)
	cartRepo.EXPECT().Delete(ctx, "owner-1", "p1").Return(errors.New("timeout"))

	err := service.ClearCart(ctx, "owner-1")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	cartRepo.AssertNotCalled(t, "Delete", ctx, "owner-1", "p2")
}

func TestCartService_MergeLocalCart_DrainsEveryLine(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	drained := map[string]int{}
	cartRepo.EXPECT().AddQuantity(ctx, mock.Anything).Run(func(_ context.Context, line *entity.CartLine) {
		assert.Equal(t, "owner-1", line.OwnerID)
		drained[line.ProductID] += line.Quantity
	}).Return(nil).Times(2)
	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(entity.CartLines{
		{ProductID: "p1", Price: 100, Quantity: 3},
		{ProductID: "p2", Price: 200, Quantity: 1},
	}, nil)

	view, err := service.MergeLocalCart(ctx, "owner-1", []usecase.LocalCartLine{
		{ProductID: "p1", Name: "Paat Mekhela", Price: 100, Quantity: 3},
		{ProductID: "p2", Name: "Silk Stole", Price: 200, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"p1": 3, "p2": 1}, drained)
	assert.Equal(t, int64(500), view.Total)
}

func TestCartService_MergeLocalCart_EmptySkipsDrain(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().FindByOwner(ctx, "owner-1").Return(entity.CartLines{}, nil)

	view, err := service.MergeLocalCart(ctx, "owner-1", nil)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	cartRepo.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything)
}

func TestCartService_MergeLocalCart_FailedDrainReturnsError(t *testing.T) {
	service, cartRepo := createTestCartService(t)
	ctx := context.Background()

	cartRepo.EXPECT().AddQuantity(ctx, mock.Anything).Return(errors.New("conditional write failed"))

	view, err := service.MergeLocalCart(ctx, "owner-1", []usecase.LocalCartLine{
		{ProductID: "p1", Name: "Paat Mekhela", Price: 100, Quantity: 1},
	})
	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestCartService_MergeLocalCart_RejectsInvalidQuantity(t *testing.T) {
	service, _ := createTestCartService(t)

	view, err := service.MergeLocalCart(context.Background(), "owner-1", []usecase.LocalCartLine{
		{ProductID: "p1", Name: "Paat Mekhela", Quantity: 0},
	})
	assert.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
