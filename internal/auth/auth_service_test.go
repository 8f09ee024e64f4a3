package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-jobboard/internal/auth"
	autherrors "go-jobboard/internal/auth/errors"
	authMock "go-jobboard/internal/auth/mock"
	"go-jobboard/internal/domain"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	req := auth.RegisterRequest{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Doe"),
		Email:     strPtr("jane@example.com"),
		Password:  strPtr("secret123"),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			EmailTaken(ctx, *req.Email).
			Return(false, nil)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auth.Account) error {
				assert.Equal(t, domain.RoleApplicant, a.Role)
				assert.NotNil(t, a.Password)
				assert.True(t, auth.VerifyPassword("secret123", *a.Password))
				return nil
			})

		assert.NoError(t, service.Register(ctx, req))
	})

	t.Run("Empty password still registers", func(t *testing.T) {
		empty := auth.RegisterRequest{
			FirstName: strPtr(""),
			LastName:  strPtr(""),
			Email:     strPtr("blank@example.com"),
			Password:  strPtr(""),
		}

		mockRepo.EXPECT().
			EmailTaken(ctx, "blank@example.com").
			Return(false, nil)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *auth.Account) error {
				assert.NotNil(t, a.Password)
				assert.True(t, auth.VerifyPassword("", *a.Password))
				return nil
			})

		assert.NoError(t, service.Register(ctx, empty))
	})

	t.Run("Email already registered", func(t *testing.T) {
		mockRepo.EXPECT().
			EmailTaken(ctx, *req.Email).
			Return(true, nil)

		err := service.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func strPtr(s string) *string {
	return &s
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo)
	ctx := context.Background()

	hashed, _ := auth.HashPassword("secret123")

	t.Run("Success with hashed password", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(&auth.Account{
				PersonID: 3,
				Email:    "jane@example.com",
				Role:     domain.RoleApplicant,
				Password: &hashed,
			}, nil)

		resp, err := service.Login(ctx, "jane@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.PersonID)
		assert.Equal(t, "Applicant", resp.Role)
	})

	t.Run("Success with legacy plaintext password", func(t *testing.T) {
		legacy := "oldpassword"

		mockRepo.EXPECT().
			FindByEmail(ctx, "legacy@example.com").
			Return(&auth.Account{
				PersonID: 4,
				Email:    "legacy@example.com",
				Role:     domain.RoleApplicant,
				Password: &legacy,
			}, nil)

		_, err := service.Login(ctx, "legacy@example.com", "oldpassword")
		assert.NoError(t, err)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "nobody@example.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrNoAccount)
	})

	t.Run("Password not set", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "inline@example.com").
			Return(&auth.Account{
				PersonID: 5,
				Email:    "inline@example.com",
				Role:     domain.RoleApplicant,
			}, nil)

		_, err := service.Login(ctx, "inline@example.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrPasswordNotSet)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(&auth.Account{
				PersonID: 3,
				Email:    "jane@example.com",
				Role:     domain.RoleApplicant,
				Password: &hashed,
			}, nil)

		_, err := service.Login(ctx, "jane@example.com", "wrong")
		assert.ErrorIs(t, err, autherrors.ErrIncorrectPassword)
	})
}
