package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

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

// MaxUploadSize caps product image uploads at 10 MB.
const MaxUploadSize = 10 << 20

// allowedImageTypes maps accepted file extensions to their content type.
var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage   service.ObjectStorage
	userRepo  repository.UserRepository
	allowlist []string
	logger    *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(
	storage service.ObjectStorage,
	userRepo repository.UserRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		storage:   storage,
		userRepo:  userRepo,
		allowlist: cfg.Admin.AllowedEmails,
		logger:    logger,
	}
}

// UploadProductImage validates and stores a product image under a fresh
// key and returns its public URL.
func (srv *uploadService) UploadProductImage(ctx context.Context, identity *service.Identity, filename string, data []byte) (string, error) {
	if identity == nil {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "no verified identity")
	}

	var profile *entity.User
	if found, err := srv.userRepo.FindByOwnerID(ctx, identity.SubjectID); err == nil {
		profile = found
	}
	if !policy.IsAdmin(identity, profile, srv.allowlist) {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "administrator access required")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", errors.Wrap(domainerrors.ErrValidationFailed,
			"unsupported image type, allowed: jpg, jpeg, png, gif, webp")
	}
	if len(data) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "empty upload")
	}
	if len(data) > MaxUploadSize {
		return "", errors.Wrap(domainerrors.ErrValidationFailed,
			fmt.Sprintf("image exceeds the %s limit", util.FormatBytes(MaxUploadSize)))
	}

	key := fmt.Sprintf("products/%s%s", uuid.New().String(), ext)

	url, err := srv.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	srv.logger.Info("product image uploaded",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return url, nil
}
