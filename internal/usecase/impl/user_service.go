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

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	allowlist []string
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:  userRepo,
		allowlist: cfg.Admin.AllowedEmails,
		logger:    logger,
	}
}

// SyncUser creates or refreshes the profile for a verified identity. The
// admin flag is the union of the persisted flag and allow-list membership;
// a sync can grant it but never clears it.
func (srv *userService) SyncUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no verified identity")
	}

	now := util.NowMillis()

	existing, err := srv.userRepo.FindByOwnerID(ctx, identity.SubjectID)
	switch {
	case err == nil:
		existing.Email = identity.Email
		existing.Name = identity.Name
		existing.ImageURL = identity.ImageURL
		existing.IsAdmin = policy.IsAdmin(identity, existing, srv.allowlist)
		existing.UpdatedAt = now

		if err := srv.userRepo.Put(ctx, existing); err != nil {
			return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
		}

		return existing, nil

	case errors.Is(err, repository.ErrUserNotFound):
		user := &entity.User{
			OwnerID:     identity.SubjectID,
			Email:       identity.Email,
			Name:        identity.Name,
			ImageURL:    identity.ImageURL,
			IsAdmin:     policy.IsAdmin(identity, nil, srv.allowlist),
			Preferences: entity.DefaultPreferences(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := srv.userRepo.Put(ctx, user); err != nil {
			return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
		}

		srv.logger.Info("user profile created", slog.String("owner_id", user.OwnerID))

		return user, nil

	default:
		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}
}

// GetUser retrieves the synced profile for an owner identity.
func (srv *userService) GetUser(ctx context.Context, ownerID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	return user, nil
}
