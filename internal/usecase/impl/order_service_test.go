package impl

import (
	"context"
	"testing"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	"streesilk/internal/domain/service"
	mockRepo "streesilk/internal/mocks/repository"
	mockSvc "streesilk/internal/mocks/service"
	"streesilk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockUserRepository,
	*mockSvc.MockMailer,
	*mockSvc.MockEventPublisher,
	*mockSvc.MockQRCodeService,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	cfg := &config.Config{
		Admin: config.AdminConfig{AllowedEmails: []string{"owner@streesilk.in"}},
	}
	svc := NewOrderService(orderRepo, userRepo, mailer, publisher, qrcode, cfg, newTestLogger())

	return svc, orderRepo, userRepo, mailer, publisher, qrcode
}

func testOrderInput() *usecase.SubmitOrderInput {
	return &usecase.SubmitOrderInput{
		Items: []usecase.SubmitOrderItem{
			{ProductID: "p1", Name: "Muga Silk Saree", Price: 1250000, Quantity: 1},
			{ProductID: "p2", Name: "Silk Stole", Price: 150000, Quantity: 2},
		},
	}
}

func TestOrderService_SubmitOrder_RequiresIdentity(t *testing.T) {
	svc, _, _, _, _, _ := createTestOrderService(t)

	order, err := svc.SubmitOrder(context.Background(), nil, testOrderInput())
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_SubmitOrder_Success(t *testing.T) {
	svc, orderRepo, userRepo, mailer, publisher, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	orderRepo.EXPECT().Put(ctx, mock.Anything).Run(func(_ context.Context, o *entity.Order) {
		assert.NotEmpty(t, o.ID)
		assert.Equal(t, identity.SubjectID, o.OwnerID)
		assert.Equal(t, identity.SubjectID, o.Customer.ID)
		assert.Equal(t, entity.OrderStatusPending, o.Status)
		assert.Equal(t, entity.DefaultPaymentMode, o.PaymentMode)
		assert.Equal(t, int64(1550000), o.Total)
		assert.Len(t, o.Items, 2)
	}).Return(nil)
	mailer.EXPECT().SendOrderNotification(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Run(func(_ context.Context, e *service.OrderEvent) {
		assert.Equal(t, int64(1550000), e.Total)
		assert.Equal(t, 3, e.ItemCount)
	}).Return(nil)

	order, err := svc.SubmitOrder(ctx, identity, testOrderInput())
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_SubmitOrder_EmailFailureStillSucceeds(t *testing.T) {
	svc, orderRepo, userRepo, mailer, publisher, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	orderRepo.EXPECT().Put(ctx, mock.Anything).Return(nil)
	mailer.EXPECT().SendOrderNotification(ctx, mock.Anything).Return(errors.New("smtp down"))
	publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	order, err := svc.SubmitOrder(ctx, identity, testOrderInput())
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
}

func TestOrderService_SubmitOrder_EmptyItems(t *testing.T) {
	svc, _, _, _, _, _ := createTestOrderService(t)

	order, err := svc.SubmitOrder(context.Background(), customerIdentity(), &usecase.SubmitOrderInput{})
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_SubmitOrder_StoreFailure(t *testing.T) {
	svc, orderRepo, userRepo, _, _, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	orderRepo.EXPECT().Put(ctx, mock.Anything).Return(errors.New("write throttled"))

	order, err := svc.SubmitOrder(ctx, identity, testOrderInput())
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestOrderService_GetOrder_OwnOrder(t *testing.T) {
	svc, orderRepo, _, _, _, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", OwnerID: identity.SubjectID}, nil)

	order, err := svc.GetOrder(ctx, identity, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}

func TestOrderService_GetOrder_OtherOwnerRejected(t *testing.T) {
	svc, orderRepo, userRepo, _, _, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", OwnerID: "someone-else"}, nil)
	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)

	order, err := svc.GetOrder(ctx, identity, "o1")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestOrderService_GetOrder_AdminReadsAnyOrder(t *testing.T) {
	svc, orderRepo, userRepo, _, _, _ := createTestOrderService(t)
	ctx := context.Background()
	identity := adminIdentity()

	orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", OwnerID: "someone-else"}, nil)
	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)

	order, err := svc.GetOrder(ctx, identity, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, orderRepo, _, _, _, _ := createTestOrderService(t)
	ctx := context.Background()

	orderRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrOrderNotFound)

	order, err := svc.GetOrder(ctx, customerIdentity(), "missing")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestOrderService_OrderQR(t *testing.T) {
	svc, orderRepo, _, _, _, qrcode := createTestOrderService(t)
	ctx := context.Background()
	identity := customerIdentity()

	orderRepo.EXPECT().FindByID(ctx, "o1").Return(&entity.Order{ID: "o1", OwnerID: identity.SubjectID}, nil)
	qrcode.EXPECT().GenerateOrderQR("o1").Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.OrderQR(ctx, identity, "o1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
