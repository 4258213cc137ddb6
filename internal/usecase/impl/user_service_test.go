package impl

import (
	"context"
	"testing"

	"wayfarer/internal/domain/entity"
	domainerrors "wayfarer/internal/domain/errors"
	"wayfarer/internal/domain/repository"
	mockRepo "wayfarer/internal/mocks/repository"
	mockSvc "wayfarer/internal/mocks/service"
	"wayfarer/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService, usecase.UserUsecase) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(mockUserRepo, mockHasher, mockTokenSvc, testLogger())

	return mockUserRepo, mockHasher, mockTokenSvc, service
}

func TestUserService_Register_Success(t *testing.T) {
	mockUserRepo, mockHasher, _, service := newUserFixture(t)

	ctx := context.Background()

	// Email is normalized before lookup and storage.
	mockUserRepo.EXPECT().FindByEmail(ctx, "dana@example.com").Return(nil, repository.ErrUserNotFound)
	mockHasher.EXPECT().Hash("s3cret-pass").Return("$2a$10$hashed", nil)
	mockUserRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "dana@example.com" && u.PasswordHash == "$2a$10$hashed"
	})).Return(nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "  Dana@Example.com ",
		Name:     "Dana",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.Equal(t, "Dana", user.Name)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo, _, _, service := newUserFixture(t)

	ctx := context.Background()
	mockUserRepo.EXPECT().FindByEmail(ctx, "dana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "dana@example.com"}, nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "dana@example.com",
		Name:     "Dana",
		Password: "s3cret-pass",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, user)
}

func TestUserService_Register_LostInsertRace(t *testing.T) {
	mockUserRepo, mockHasher, _, service := newUserFixture(t)

	ctx := context.Background()
	mockUserRepo.EXPECT().FindByEmail(ctx, "dana@example.com").Return(nil, repository.ErrUserNotFound)
	mockHasher.EXPECT().Hash("s3cret-pass").Return("$2a$10$hashed", nil)
	mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email:    "dana@example.com",
		Name:     "Dana",
		Password: "s3cret-pass",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	mockUserRepo, mockHasher, mockTokenSvc, service := newUserFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	mockUserRepo.EXPECT().FindByEmail(ctx, "dana@example.com").
		Return(&entity.User{ID: userID, Email: "dana@example.com", PasswordHash: "$2a$10$hashed"}, nil)
	mockHasher.EXPECT().Check("s3cret-pass", "$2a$10$hashed").Return(true)
	mockTokenSvc.EXPECT().GenerateTokens(userID).Return("access-token", "refresh-token", nil)

	tokens, err := service.Login(ctx, "Dana@Example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	mockUserRepo, _, _, service := newUserFixture(t)

	ctx := context.Background()
	mockUserRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	tokens, err := service.Login(ctx, "nobody@example.com", "whatever")

	// Unknown email and wrong password are indistinguishable to the caller.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	mockUserRepo, mockHasher, _, service := newUserFixture(t)

	ctx := context.Background()
	mockUserRepo.EXPECT().FindByEmail(ctx, "dana@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "dana@example.com", PasswordHash: "$2a$10$hashed"}, nil)
	mockHasher.EXPECT().Check("wrong", "$2a$10$hashed").Return(false)

	tokens, err := service.Login(ctx, "dana@example.com", "wrong")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}
