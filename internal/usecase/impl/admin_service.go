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

// adminService implements the AdminUsecase interface. Every operation runs
// the admin policy before touching the store.
type adminService struct {
	productRepo repository.ProductRepository
	contactRepo repository.ContactRepository
	userRepo    repository.UserRepository
	allowlist   []string
	logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	productRepo repository.ProductRepository,
	contactRepo repository.ContactRepository,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		productRepo: productRepo,
		contactRepo: contactRepo,
		userRepo:    userRepo,
		allowlist:   cfg.Admin.AllowedEmails,
		logger:      logger,
	}
}

// requireAdmin loads the caller's synced profile and runs the admin policy.
// A missing profile is not an error: allow-list membership alone suffices.
func (srv *adminService) requireAdmin(ctx context.Context, identity *service.Identity) error {
	if identity == nil {
		return errors.Wrap(domainerrors.ErrUnauthorized, "no verified identity")
	}

	var profile *entity.User
	found, err := srv.userRepo.FindByOwnerID(ctx, identity.SubjectID)
	if err == nil {
		profile = found
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if !policy.IsAdmin(identity, profile, srv.allowlist) {
		return errors.Wrap(domainerrors.ErrUnauthorized, "administrator access required")
	}

	return nil
}

// CreateProduct creates a catalog entry with a fresh identity.
func (srv *adminService) CreateProduct(ctx context.Context, identity *service.Identity, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.requireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	now := util.NowMillis()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		Images:        input.Images,
		Category:      input.Category,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		IsNew:         input.IsNew,
		IsSale:        input.IsSale,
		IsActive:      true,
		Stock:         input.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	// Keep the legacy single-image field aligned with the image list.
	if product.Image == "" && len(product.Images) > 0 {
		product.Image = product.Images[0]
	}
	if len(product.Images) == 0 && product.Image != "" {
		product.Images = []string{product.Image}
	}

	if err := srv.productRepo.Put(ctx, product); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	srv.logger.Info("product created",
		slog.String("product_id", product.ID),
		slog.String("admin", identity.Email),
	)

	return product, nil
}

// UpdateProduct merges the provided fields into an existing product. The
// product id never changes.
func (srv *adminService) UpdateProduct(ctx context.Context, identity *service.Identity, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := srv.requireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = *input.OriginalPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
	if input.Colors != nil {
		product.Colors = *input.Colors
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.IsSale != nil {
		product.IsSale = *input.IsSale
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	product.UpdatedAt = util.NowMillis()

	if err := srv.productRepo.Put(ctx, product); err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Deleting an absent
// product succeeds.
func (srv *adminService) DeleteProduct(ctx context.Context, identity *service.Identity, id string) error {
	if err := srv.requireAdmin(ctx, identity); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	srv.logger.Info("product deleted",
		slog.String("product_id", id),
		slog.String("admin", identity.Email),
	)

	return nil
}

// ListContactMessages retrieves submitted messages, newest first.
func (srv *adminService) ListContactMessages(ctx context.Context, identity *service.Identity) ([]entity.ContactMessage, error) {
	if err := srv.requireAdmin(ctx, identity); err != nil {
		return nil, err
	}

	messages, err := srv.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return messages, nil
}
