// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"streesilk/internal/domain/cart"
	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	"streesilk/internal/usecase"
	"streesilk/internal/util"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface over the durable tier.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// GetCart retrieves the owner's cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context, ownerID string) (*usecase.CartView, error) {
	lines, err := srv.cartRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return &usecase.CartView{
		Items: lines,
		Total: lines.Total(),
		Count: lines.Count(),
	}, nil
}

// AddItem merges quantity of a product into the owner's cart. The merge is a
// single atomic store write, so two overlapping adds for the same product
// both land in the final quantity.
func (srv *cartService) AddItem(ctx context.Context, ownerID string, input *usecase.AddCartItemInput) error {
	if input.Quantity < 1 {
		return errors.Wrap(domainerrors.ErrValidationFailed, cart.ErrInvalidQuantity.Error())
	}

	now := util.NowMillis()
	line := &entity.CartLine{
		OwnerID:       ownerID,
		ProductID:     input.ProductID,
		ID:            input.ProductID,
		Name:          input.Name,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		Category:      input.Category,
		Quantity:      input.Quantity,
		Size:          input.Size,
		Color:         input.Color,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.cartRepo.AddQuantity(ctx, line); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	srv.logger.Debug("cart line added",
		slog.String("owner_id", ownerID),
		slog.String("product_id", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return nil
}

// UpdateQuantity overwrites a line's quantity. Zero or less removes the line.
func (srv *cartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) error {
	if quantity <= 0 {
		return srv.RemoveItem(ctx, ownerID, productID)
	}

	err := srv.cartRepo.SetQuantity(ctx, ownerID, productID, quantity, util.NowMillis())
	if err != nil {
		if errors.Is(err, repository.ErrLineNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "cart line not found")
		}

		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return nil
}

// RemoveItem removes a line. Removing an absent line is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, ownerID, productID string) error {
	if err := srv.cartRepo.Delete(ctx, ownerID, productID); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return nil
}

// ClearCart removes every line with one delete per line. A failed delete
// leaves the remaining lines in place; the next clear picks them up.
func (srv *cartService) ClearCart(ctx context.Context, ownerID string) error {
	lines, err := srv.cartRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	for _, line := range lines {
		if err := srv.cartRepo.Delete(ctx, ownerID, line.ProductID); err != nil {
			srv.logger.Warn("cart clear interrupted",
				slog.String("owner_id", ownerID),
				slog.String("product_id", line.ProductID),
			)

			return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
		}
	}

	return nil
}

// MergeLocalCart drains a submitted anonymous cart into the durable tier and
// returns the merged cart. The reconciler pops a local line only after its
// durable write succeeded, so a retried drain resumes with the pending lines
// and never double-counts a migrated one.
func (srv *cartService) MergeLocalCart(ctx context.Context, ownerID string, local []usecase.LocalCartLine) (*usecase.CartView, error) {
	seed := make(entity.CartLines, 0, len(local))
	for _, l := range local {
		if l.Quantity < 1 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, cart.ErrInvalidQuantity.Error())
		}
		seed = append(seed, entity.CartLine{
			ProductID:     l.ProductID,
			ID:            l.ProductID,
			Name:          l.Name,
			Price:         l.Price,
			OriginalPrice: l.OriginalPrice,
			Image:         l.Image,
			Category:      l.Category,
			Quantity:      l.Quantity,
			Size:          l.Size,
			Color:         l.Color,
		})
	}

	reconciler := cart.NewReconciler(seed)
	if err := reconciler.Identify(ctx, ownerID, srv.cartRepo); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	srv.logger.Info("local cart drained",
		slog.String("owner_id", ownerID),
		slog.Int("line_count", len(seed)),
	)

	return srv.GetCart(ctx, ownerID)
}
