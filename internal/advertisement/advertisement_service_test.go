package advertisement_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"go-jobboard/internal/advertisement"
	aderrors "go-jobboard/internal/advertisement/errors"
	adMock "go-jobboard/internal/advertisement/mock"
	companyerrors "go-jobboard/internal/company/errors"
	companyMock "go-jobboard/internal/company/mock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adMock.NewMockRepository(ctrl)
	mockCompanyRepo := companyMock.NewMockRepository(ctrl)
	service := advertisement.NewService(mockRepo, mockCompanyRepo)
	ctx := context.Background()

	t.Run("Success with salaries and expiry", func(t *testing.T) {
		req := advertisement.CreateAdvertisementRequest{
			CompanyID:   1,
			Title:       "Backend Engineer",
			Description: "Go services",
			SalaryMin:   json.RawMessage(`42000`),
			SalaryMax:   json.RawMessage(`"55000.50"`),
			DateExpiry:  "2026-12-31",
		}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ad *advertisement.Advertisement) error {
				require.NotNil(t, ad.SalaryMin)
				require.NotNil(t, ad.SalaryMax)
				assert.True(t, ad.SalaryMin.Equal(decimal.RequireFromString("42000")))
				assert.True(t, ad.SalaryMax.Equal(decimal.RequireFromString("55000.5")))
				require.NotNil(t, ad.DateExpiry)
				assert.Equal(t, "2026-12-31", ad.DateExpiry.Format("2006-01-02"))
				ad.AdID = 11
				return nil
			})

		id, err := service.Create(ctx, req, false)
		assert.NoError(t, err)
		assert.Equal(t, uint(11), id)
	})

	t.Run("Inverted salary range rejected", func(t *testing.T) {
		_, err := service.Create(ctx, advertisement.CreateAdvertisementRequest{
			CompanyID:   1,
			Title:       "Backend Engineer",
			Description: "Go services",
			SalaryMin:   json.RawMessage(`2000`),
			SalaryMax:   json.RawMessage(`1000`),
		}, false)
		assert.Error(t, err)
	})

	t.Run("Bad expiry format", func(t *testing.T) {
		_, err := service.Create(ctx, advertisement.CreateAdvertisementRequest{
			CompanyID:   1,
			Title:       "Backend Engineer",
			Description: "Go services",
			DateExpiry:  "31/12/2026",
		}, false)
		assert.ErrorIs(t, err, aderrors.ErrInvalidDateExpiry)
	})

	t.Run("Admin surface verifies the company", func(t *testing.T) {
		mockCompanyRepo.EXPECT().
			Exists(ctx, uint(9)).
			Return(false, nil)

		_, err := service.Create(ctx, advertisement.CreateAdvertisementRequest{
			CompanyID:   9,
			Title:       "Backend Engineer",
			Description: "Go services",
		}, true)
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adMock.NewMockRepository(ctrl)
	mockCompanyRepo := companyMock.NewMockRepository(ctrl)
	service := advertisement.NewService(mockRepo, mockCompanyRepo)
	ctx := context.Background()

	storedMax := decimal.RequireFromString("50000")

	t.Run("No fields provided", func(t *testing.T) {
		err := service.Update(ctx, 1, advertisement.UpdateAdvertisementRequest{})
		assert.Error(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		title := "New title"

		mockRepo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		err := service.Update(ctx, 99, advertisement.UpdateAdvertisementRequest{Title: &title})
		assert.ErrorIs(t, err, aderrors.ErrAdvertisementNotFound)
	})

	t.Run("New min checked against stored max", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(1)).
			Return(&advertisement.Advertisement{AdID: 1, SalaryMax: &storedMax}, nil)

		err := service.Update(ctx, 1, advertisement.UpdateAdvertisementRequest{
			SalaryMin: json.RawMessage(`60000`),
		})
		assert.Error(t, err)
	})

	t.Run("Explicit null clears a salary", func(t *testing.T) {
		mockRepo.EXPECT().
			FindByID(ctx, uint(1)).
			Return(&advertisement.Advertisement{AdID: 1, SalaryMax: &storedMax}, nil)

		mockRepo.EXPECT().
			UpdateFields(ctx, uint(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) error {
				v, present := fields["salary_max"]
				require.True(t, present)
				assert.Nil(t, v)
				return nil
			})

		err := service.Update(ctx, 1, advertisement.UpdateAdvertisementRequest{
			SalaryMax: json.RawMessage(`null`),
		})
		assert.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := adMock.NewMockRepository(ctrl)
	mockCompanyRepo := companyMock.NewMockRepository(ctrl)
	service := advertisement.NewService(mockRepo, mockCompanyRepo)
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exists(ctx, uint(5)).
			Return(false, nil)

		err := service.Delete(ctx, 5)
		assert.ErrorIs(t, err, aderrors.ErrAdvertisementNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().
			Exists(ctx, uint(6)).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(ctx, uint(6)).
			Return(nil)

		assert.NoError(t, service.Delete(ctx, 6))
	})
}
