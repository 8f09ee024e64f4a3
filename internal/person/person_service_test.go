package person_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"go-jobboard/internal/domain"
	"go-jobboard/internal/person"
	personerrors "go-jobboard/internal/person/errors"
	personMock "go-jobboard/internal/person/mock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := personMock.NewMockRepository(ctrl)
	service := person.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Success with explicit password", func(t *testing.T) {
		req := person.CreatePersonRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Role:      "Recruiter",
			Password:  "secret123",
		}

		mockRepo.EXPECT().
			EmailTaken(ctx, req.Email, uint(0)).
			Return(false, nil)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *person.Person) error {
				assert.Equal(t, domain.RoleRecruiter, p.Role)
				assert.NotNil(t, p.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*p.Password), []byte("secret123")))
				p.PersonID = 7
				return nil
			})

		id, err := service.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), id)
	})

	t.Run("Missing password falls back to default", func(t *testing.T) {
		req := person.CreatePersonRequest{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john@example.com",
			Role:      "Applicant",
		}

		mockRepo.EXPECT().
			EmailTaken(ctx, req.Email, uint(0)).
			Return(false, nil)

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *person.Person) error {
				assert.NotNil(t, p.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*p.Password), []byte("changeme123")))
				return nil
			})

		_, err := service.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("Invalid role", func(t *testing.T) {
		_, err := service.Create(ctx, person.CreatePersonRequest{
			FirstName: "Bad",
			LastName:  "Role",
			Email:     "bad@example.com",
			Role:      "Superuser",
		})
		assert.ErrorIs(t, err, personerrors.ErrInvalidRole)
	})

	t.Run("Email already registered", func(t *testing.T) {
		mockRepo.EXPECT().
			EmailTaken(ctx, "dup@example.com", uint(0)).
			Return(true, nil)

		_, err := service.Create(ctx, person.CreatePersonRequest{
			FirstName: "Du",
			LastName:  "Plicate",
			Email:     "dup@example.com",
			Role:      "Applicant",
		})
		assert.ErrorIs(t, err, personerrors.ErrEmailAlreadyRegistered)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := personMock.NewMockRepository(ctrl)
	service := person.NewService(mockRepo)
	ctx := context.Background()

	adminID := uint(1)

	t.Run("Self demotion rejected before write", func(t *testing.T) {
		role := "Applicant"

		mockRepo.EXPECT().
			FindByID(ctx, adminID).
			Return(&person.Person{PersonID: adminID, Role: domain.RoleAdmin}, nil)

		err := service.Update(ctx, adminID, adminID, person.UpdatePersonRequest{Role: &role})
		assert.ErrorIs(t, err, personerrors.ErrSelfRoleChange)
	})

	t.Run("No fields provided", func(t *testing.T) {
		err := service.Update(ctx, adminID, 2, person.UpdatePersonRequest{})
		assert.Error(t, err)
	})

	t.Run("Target not found", func(t *testing.T) {
		name := "New"

		mockRepo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		err := service.Update(ctx, adminID, 99, person.UpdatePersonRequest{FirstName: &name})
		assert.ErrorIs(t, err, personerrors.ErrPersonNotFound)
	})

	t.Run("Explicit null clears the company link", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(2)).
			Return(&person.Person{PersonID: 2, Role: domain.RoleRecruiter}, nil)

		mockRepo.EXPECT().
			UpdateFields(ctx, uint(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
				assert.Contains(t, fields, "company_id")
				assert.Nil(t, fields["company_id"])
				return nil
			})

		err := service.Update(ctx, adminID, 2, person.UpdatePersonRequest{
			CompanyID: json.RawMessage("null"),
		})
		assert.NoError(t, err)
	})

	t.Run("Numeric company id sets the link", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(2)).
			Return(&person.Person{PersonID: 2, Role: domain.RoleRecruiter}, nil)

		mockRepo.EXPECT().
			UpdateFields(ctx, uint(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
				assert.Equal(t, uint(5), fields["company_id"])
				return nil
			})

		err := service.Update(ctx, adminID, 2, person.UpdatePersonRequest{
			CompanyID: json.RawMessage("5"),
		})
		assert.NoError(t, err)
	})

	t.Run("Malformed company id rejected", func(t *testing.T) {
		err := service.Update(ctx, adminID, 2, person.UpdatePersonRequest{
			CompanyID: json.RawMessage(`"three"`),
		})
		assert.Error(t, err)
	})

	t.Run("Success partial update", func(t *testing.T) {
		name := "Renamed"

		mockRepo.EXPECT().
			FindByID(ctx, uint(2)).
			Return(&person.Person{PersonID: 2, Role: domain.RoleApplicant}, nil)

		mockRepo.EXPECT().
			UpdateFields(ctx, uint(2), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
				assert.Equal(t, map[string]any{"first_name": "Renamed"}, fields)
				return nil
			})

		err := service.Update(ctx, adminID, 2, person.UpdatePersonRequest{FirstName: &name})
		assert.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := personMock.NewMockRepository(ctrl)
	service := person.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Self delete rejected without store access", func(t *testing.T) {
		err := service.Delete(ctx, 1, 1)
		assert.ErrorIs(t, err, personerrors.ErrSelfDelete)
	})

	t.Run("Target not found", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(42)).
			Return(nil, gorm.ErrRecordNotFound)

		err := service.Delete(ctx, 1, 42)
		assert.ErrorIs(t, err, personerrors.ErrPersonNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(2)).
			Return(&person.Person{PersonID: 2}, nil)
		mockRepo.EXPECT().
			Delete(ctx, uint(2)).
			Return(nil)

		assert.NoError(t, service.Delete(ctx, 1, 2))
	})
}

func TestService_ResolveAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := personMock.NewMockRepository(ctrl)
	service := person.NewService(mockRepo)
	ctx := context.Background()

	t.Run("Unknown person", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(5)).
			Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, service.ResolveAdmin(ctx, 5), personerrors.ErrAdminRequired)
	})

	t.Run("Non admin role", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(6)).
			Return(&person.Person{PersonID: 6, Role: domain.RoleRecruiter}, nil)

		assert.ErrorIs(t, service.ResolveAdmin(ctx, 6), personerrors.ErrAdminRequired)
	})

	t.Run("Admin passes", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(7)).
			Return(&person.Person{PersonID: 7, Role: domain.RoleAdmin}, nil)

		assert.NoError(t, service.ResolveAdmin(ctx, 7))
	})
}
