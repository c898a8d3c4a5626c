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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := &config.Config{
		Admin: config.AdminConfig{AllowedEmails: []string{"owner@streesilk.in"}},
	}
	svc := NewUserService(userRepo, cfg, newTestLogger())

	return svc, userRepo
}

func TestUserService_SyncUser_RequiresIdentity(t *testing.T) {
	svc, _ := createTestUserService(t)

	user, err := svc.SyncUser(context.Background(), nil)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_SyncUser_FirstSyncDefaults(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Put(ctx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
		assert.Equal(t, identity.SubjectID, u.OwnerID)
		assert.Equal(t, identity.Email, u.Email)
		assert.False(t, u.IsAdmin)
		assert.Equal(t, entity.DefaultPreferences(), u.Preferences)
		assert.Positive(t, u.CreatedAt)
	}).Return(nil)

	user, err := svc.SyncUser(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "system", user.Preferences.Theme)
	assert.True(t, user.Preferences.ReceiveEmails)
}

func TestUserService_SyncUser_AllowlistGrantsAdmin(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()
	identity := adminIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Put(ctx, mock.Anything).Return(nil)

	user, err := svc.SyncUser(ctx, identity)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestUserService_SyncUser_RefreshPreservesPreferencesAndAdmin(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()
	identity := customerIdentity()

	// Profile holds the admin flag even though the email left the allow-list:
	// a sync must never clear it.
	existing := &entity.User{
		OwnerID:     identity.SubjectID,
		Email:       "old@example.com",
		Name:        "Old Name",
		IsAdmin:     true,
		Preferences: entity.Preferences{Theme: "dark", ReceiveEmails: false},
		CreatedAt:   42,
	}
	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(existing, nil)
	userRepo.EXPECT().Put(ctx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
		assert.Equal(t, identity.Email, u.Email)
		assert.Equal(t, identity.Name, u.Name)
		assert.True(t, u.IsAdmin)
		assert.Equal(t, "dark", u.Preferences.Theme)
		assert.Equal(t, int64(42), u.CreatedAt)
	}).Return(nil)

	user, err := svc.SyncUser(ctx, identity)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin)
}

func TestUserService_SyncUser_StoreFailure(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()
	identity := customerIdentity()

	userRepo.EXPECT().FindByOwnerID(ctx, identity.SubjectID).Return(nil, errors.New("table unavailable"))

	user, err := svc.SyncUser(ctx, identity)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, userRepo := createTestUserService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByOwnerID(ctx, "missing").Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetUser(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
