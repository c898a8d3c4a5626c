package impl

import (
	"context"
	"log/slog"

	"streesilk/config"
	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/policy"
	"streesilk/internal/domain/repository"
	"streesilk/internal/domain/service"
	"streesilk/internal/usecase"
	"streesilk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	mailer    service.Mailer
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	allowlist []string
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	mailer service.Mailer,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		publisher: publisher,
		qrcode:    qrcode,
		allowlist: cfg.Admin.AllowedEmails,
		logger:    logger,
	}
}

// SubmitOrder turns a client-submitted cart snapshot into a durable order.
// The customer block and every line are denormalized copies, never live
// references, so the record stays historically accurate. Email and event
// publishing are best-effort: failures are logged and the order still
// succeeds.
func (srv *orderService) SubmitOrder(ctx context.Context, identity *service.Identity, input *usecase.SubmitOrderInput) (*entity.Order, error) {
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "order submission requires a verified identity")
	}
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order has no items")
	}

	items := make(entity.CartLines, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item quantity must be at least 1")
		}
		items = append(items, entity.CartLine{
			OwnerID:       identity.SubjectID,
			ProductID:     item.ProductID,
			ID:            item.ProductID,
			Name:          item.Name,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Image:         item.Image,
			Category:      item.Category,
			Quantity:      item.Quantity,
			Size:          item.Size,
			Color:         item.Color,
		})
	}

	customer := entity.OrderCustomer{
		ID:    identity.SubjectID,
		Name:  identity.Name,
		Email: identity.Email,
	}
	// Prefer the synced profile's name when the token carries none.
	if profile, err := srv.userRepo.FindByOwnerID(ctx, identity.SubjectID); err == nil {
		if customer.Name == "" {
			customer.Name = profile.Name
		}
		if customer.Email == "" {
			customer.Email = profile.Email
		}
	}

	order := &entity.Order{
		ID:          uuid.New().String(),
		OwnerID:     identity.SubjectID,
		Customer:    customer,
		Items:       items,
		Total:       items.Total(),
		Status:      entity.OrderStatusPending,
		PaymentMode: entity.DefaultPaymentMode,
		CreatedAt:   util.NowMillis(),
	}

	if err := srv.orderRepo.Put(ctx, order); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if err := srv.mailer.SendOrderNotification(ctx, order); err != nil {
		srv.logger.Warn("order notification email failed",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	event := &service.OrderEvent{
		OrderID:   order.ID,
		OwnerID:   order.OwnerID,
		Total:     order.Total,
		ItemCount: items.Count(),
		CreatedAt: order.CreatedAt,
	}
	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.logger.Warn("order event publish failed",
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}

	srv.logger.Info("order submitted",
		slog.String("order_id", order.ID),
		slog.String("owner_id", order.OwnerID),
		slog.Int64("total", order.Total),
	)

	return order, nil
}

// GetOrder retrieves an order. Non-admin callers may only read their own.
func (srv *orderService) GetOrder(ctx context.Context, identity *service.Identity, id string) (*entity.Order, error) {
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no verified identity")
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "order not found")
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if order.OwnerID != identity.SubjectID && !srv.isAdmin(ctx, identity) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "order belongs to another customer")
	}

	return order, nil
}

// OrderQR renders a PNG QR code linking to the order's tracking page.
func (srv *orderService) OrderQR(ctx context.Context, identity *service.Identity, id string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR")
	}

	return png, nil
}

func (srv *orderService) isAdmin(ctx context.Context, identity *service.Identity) bool {
	var profile *entity.User
	if found, err := srv.userRepo.FindByOwnerID(ctx, identity.SubjectID); err == nil {
		profile = found
	}

	return policy.IsAdmin(identity, profile, srv.allowlist)
}
