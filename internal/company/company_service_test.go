package company_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go-jobboard/internal/company"
	companyerrors "go-jobboard/internal/company/errors"
	companyMock "go-jobboard/internal/company/mock"
	"go-jobboard/internal/domain"
	"go-jobboard/internal/person"
	personerrors "go-jobboard/internal/person/errors"
	personMock "go-jobboard/internal/person/mock"
)

func setupTxDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestService_Signup(t *testing.T) {
	ctx := context.Background()

	req := company.SignupRequest{
		Company: company.CompanySignup{
			Name:     "Acme",
			Industry: "Software",
			Size:     "50-100",
			Email:    "hello@acme.test",
		},
		Recruiter: company.RecruiterSignup{
			FirstName: "Rita",
			LastName:  "Recruiter",
			Email:     "rita@acme.test",
			Phone:     "123456",
			Password:  "secret123",
		},
	}

	t.Run("Recruiter email conflict stops before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gdb, _ := setupTxDB(t)
		mockRepo := companyMock.NewMockRepository(ctrl)
		mockPersonRepo := personMock.NewMockRepository(ctrl)
		service := company.NewService(gdb, mockRepo, mockPersonRepo)

		mockPersonRepo.EXPECT().
			EmailTaken(ctx, req.Recruiter.Email, uint(0)).
			Return(true, nil)

		_, err := service.Signup(ctx, req)
		assert.ErrorIs(t, err, personerrors.ErrEmailAlreadyRegistered)
	})

	t.Run("Company and recruiter created in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gdb, sqlMock := setupTxDB(t)
		mockRepo := companyMock.NewMockRepository(ctrl)
		mockPersonRepo := personMock.NewMockRepository(ctrl)
		service := company.NewService(gdb, mockRepo, mockPersonRepo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		mockPersonRepo.EXPECT().
			EmailTaken(ctx, req.Recruiter.Email, uint(0)).
			Return(false, nil)

		mockRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(mockRepo)
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *company.Company) error {
				c.CompanyID = 3
				return nil
			})

		mockPersonRepo.EXPECT().
			WithTx(gomock.Any()).
			Return(mockPersonRepo)
		mockPersonRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *person.Person) error {
				assert.Equal(t, domain.RoleRecruiter, p.Role)
				require.NotNil(t, p.CompanyID)
				assert.Equal(t, uint(3), *p.CompanyID)
				p.PersonID = 9
				return nil
			})

		resp, err := service.Signup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, uint(3), resp.CompanyID)
		assert.Equal(t, uint(9), resp.RecruiterID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("Recruiter insert failure rolls the company back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gdb, sqlMock := setupTxDB(t)
		mockRepo := companyMock.NewMockRepository(ctrl)
		mockPersonRepo := personMock.NewMockRepository(ctrl)
		service := company.NewService(gdb, mockRepo, mockPersonRepo)

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		mockPersonRepo.EXPECT().
			EmailTaken(ctx, req.Recruiter.Email, uint(0)).
			Return(false, nil)

		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		mockPersonRepo.EXPECT().WithTx(gomock.Any()).Return(mockPersonRepo)
		mockPersonRepo.EXPECT().Create(ctx, gomock.Any()).Return(assert.AnError)

		_, err := service.Signup(ctx, req)
		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gdb, _ := setupTxDB(t)
	mockRepo := companyMock.NewMockRepository(ctrl)
	mockPersonRepo := personMock.NewMockRepository(ctrl)
	service := company.NewService(gdb, mockRepo, mockPersonRepo)
	ctx := context.Background()

	t.Run("No fields provided", func(t *testing.T) {
		err := service.Update(ctx, 1, company.UpdateCompanyRequest{})
		assert.Error(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		name := "Renamed"

		mockRepo.EXPECT().
			Exists(ctx, uint(99)).
			Return(false, nil)

		err := service.Update(ctx, 99, company.UpdateCompanyRequest{Name: &name})
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		name := "Renamed"

		mockRepo.EXPECT().
			Exists(ctx, uint(1)).
			Return(true, nil)
		mockRepo.EXPECT().
			UpdateFields(ctx, uint(1), map[string]any{"name": "Renamed"}).
			Return(nil)

		assert.NoError(t, service.Update(ctx, 1, company.UpdateCompanyRequest{Name: &name}))
	})
}
