package impl

import (
	"context"
	"log/slog"

	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	"streesilk/internal/domain/repository"
	"streesilk/internal/domain/service"
	"streesilk/internal/usecase"
	"streesilk/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	mailer      service.Mailer
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	contactRepo repository.ContactRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// SubmitContact persists a support inquiry and forwards it to the shop inbox.
// No identity is required; when one is present it is linked to the message.
// The email forward is best-effort.
func (srv *contactService) SubmitContact(ctx context.Context, identity *service.Identity, input *usecase.SubmitContactInput) (string, error) {
	message := &entity.ContactMessage{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    entity.ContactStatusNew,
		CreatedAt: util.NowMillis(),
	}
	if identity != nil {
		message.OwnerID = identity.SubjectID
	}

	if err := srv.contactRepo.Put(ctx, message); err != nil {
		return "", errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	}

	if err := srv.mailer.SendContactNotification(ctx, message); err != nil {
		srv.logger.Warn("contact notification email failed",
			slog.String("message_id", message.ID),
			slog.Any("error", err),
		)
	}

	srv.logger.Info("contact message submitted", slog.String("message_id", message.ID))

	return message.ID, nil
}
