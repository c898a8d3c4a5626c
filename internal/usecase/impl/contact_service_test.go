package impl

import (
	"context"
	"testing"

	"streesilk/internal/domain/entity"
	domainerrors "streesilk/internal/domain/errors"
	mockRepo "streesilk/internal/mocks/repository"
	mockSvc "streesilk/internal/mocks/service"
	"streesilk/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockContactRepository, *mockSvc.MockMailer) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	svc := NewContactService(contactRepo, mailer, newTestLogger())

	return svc, contactRepo, mailer
}

func testContactInput() *usecase.SubmitContactInput {
	return &usecase.SubmitContactInput{
		Name:    "Priya",
		Email:   "priya@example.com",
		Subject: "Care instructions",
		Message: "How do I wash a muga saree?",
	}
}

func TestContactService_SubmitContact_Anonymous(t *testing.T) {
	svc, contactRepo, mailer := createTestContactService(t)
	ctx := context.Background()

	contactRepo.EXPECT().Put(ctx, mock.Anything).Run(func(_ context.Context, m *entity.ContactMessage) {
		assert.NotEmpty(t, m.ID)
		assert.Empty(t, m.OwnerID)
		assert.Equal(t, entity.ContactStatusNew, m.Status)
		assert.Positive(t, m.CreatedAt)
	}).Return(nil)
	mailer.EXPECT().SendContactNotification(ctx, mock.Anything).Return(nil)

	id, err := svc.SubmitContact(ctx, nil, testContactInput())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestContactService_SubmitContact_LinksIdentity(t *testing.T) {
	svc, contactRepo, mailer := createTestContactService(t)
	ctx := context.Background()
	identity := customerIdentity()

	contactRepo.EXPECT().Put(ctx, mock.Anything).Run(func(_ context.Context, m *entity.ContactMessage) {
		assert.Equal(t, identity.SubjectID, m.OwnerID)
	}).Return(nil)
	mailer.EXPECT().SendContactNotification(ctx, mock.Anything).Return(nil)

	_, err := svc.SubmitContact(ctx, identity, testContactInput())
	require.NoError(t, err)
}

func TestContactService_SubmitContact_EmailFailureStillSucceeds(t *testing.T) {
	svc, contactRepo, mailer := createTestContactService(t)
	ctx := context.Background()

	contactRepo.EXPECT().Put(ctx, mock.Anything).Return(nil)
	mailer.EXPECT().SendContactNotification(ctx, mock.Anything).Return(errors.New("smtp down"))

	id, err := svc.SubmitContact(ctx, nil, testContactInput())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestContactService_SubmitContact_StoreFailure(t *testing.T) {
	svc, contactRepo, _ := createTestContactService(t)
	ctx := context.Background()

	contactRepo.EXPECT().Put(ctx, mock.Anything).Return(errors.New("write throttled"))

	id, err := svc.SubmitContact(ctx, nil, testContactInput())
	assert.Error(t, err)
	assert.Empty(t, id)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}
