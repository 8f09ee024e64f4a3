package advertisement

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	aderrors "go-jobboard/internal/advertisement/errors"
	"go-jobboard/internal/company"
	companyerrors "go-jobboard/internal/company/errors"
	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
	"go-jobboard/internal/shared/money"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=advertisement_service.go -destination=mock/advertisement_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]AdvertisementResponse, error)
	GetByID(ctx context.Context, id uint) (AdvertisementResponse, error)
	ListByCompany(ctx context.Context, companyID uint) ([]AdvertisementResponse, error)

	// Create with verifyCompany set checks the company FK and fails NotFound
	// when it dangles; the public surface historically skips that check.
	Create(ctx context.Context, req CreateAdvertisementRequest, verifyCompany bool) (uint, error)
	Update(ctx context.Context, id uint, req UpdateAdvertisementRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo        Repository
	companyRepo company.Repository
}

func NewService(repo Repository, companyRepo company.Repository) Service {
	return &service{repo: repo, companyRepo: companyRepo}
}

func (s *service) List(ctx context.Context) ([]AdvertisementResponse, error) {
	ads, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(ads), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (AdvertisementResponse, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdvertisementResponse{}, aderrors.ErrAdvertisementNotFound
		}
		return AdvertisementResponse{}, err
	}
	return mapToResponse(*ad), nil
}

func (s *service) ListByCompany(ctx context.Context, companyID uint) ([]AdvertisementResponse, error) {
	ads, err := s.repo.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(ads), nil
}

func (s *service) Create(ctx context.Context, req CreateAdvertisementRequest, verifyCompany bool) (uint, error) {
	l := contextutil.GetLogger(ctx, nil)

	salaryMin, err := money.Parse(req.SalaryMin, "salary_min")
	if err != nil {
		return 0, err
	}
	salaryMax, err := money.Parse(req.SalaryMax, "salary_max")
	if err != nil {
		return 0, err
	}
	if err := money.CheckRange(salaryMin, salaryMax); err != nil {
		return 0, err
	}

	var dateExpiry *time.Time
	if req.DateExpiry != "" {
		t, err := time.Parse(dateLayout, req.DateExpiry)
		if err != nil {
			return 0, aderrors.ErrInvalidDateExpiry
		}
		dateExpiry = &t
	}

	if verifyCompany {
		exists, err := s.companyRepo.Exists(ctx, req.CompanyID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, companyerrors.ErrCompanyNotFound
		}
	}

	ad := &Advertisement{
		CompanyID:    req.CompanyID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     strPtr(req.Location),
		SalaryMin:    salaryMin,
		SalaryMax:    salaryMax,
		ContractType: strPtr(req.ContractType),
		DateExpiry:   dateExpiry,
	}

	if err := s.repo.Create(ctx, ad); err != nil {
		l.Error("failed to create advertisement", zap.Error(err))
		return 0, err
	}

	l.Info("advertisement created",
		zap.Uint("ad_id", ad.AdID),
		zap.Uint("company_id", ad.CompanyID),
	)
	return ad.AdID, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAdvertisementRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.ContractType != nil {
		fields["contract_type"] = *req.ContractType
	}
	if req.DateExpiry != nil {
		if *req.DateExpiry == "" {
			fields["date_expiry"] = nil
		} else {
			t, err := time.Parse(dateLayout, *req.DateExpiry)
			if err != nil {
				return aderrors.ErrInvalidDateExpiry
			}
			fields["date_expiry"] = t
		}
	}

	salaryMinPresent := req.SalaryMin != nil
	salaryMaxPresent := req.SalaryMax != nil

	salaryMin, err := money.Parse(req.SalaryMin, "salary_min")
	if err != nil {
		return err
	}
	salaryMax, err := money.Parse(req.SalaryMax, "salary_max")
	if err != nil {
		return err
	}
	if salaryMinPresent {
		fields["salary_min"] = decimalOrNil(salaryMin)
	}
	if salaryMaxPresent {
		fields["salary_max"] = decimalOrNil(salaryMax)
	}

	if req.CompanyID != nil {
		fields["company_id"] = *req.CompanyID
	}

	if len(fields) == 0 {
		return apperror.ErrNoFieldsProvided
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return aderrors.ErrAdvertisementNotFound
		}
		return err
	}

	// The range invariant holds over the effective post-update pair: sides
	// not part of this update keep their stored value.
	effectiveMin := existing.SalaryMin
	if salaryMinPresent {
		effectiveMin = salaryMin
	}
	effectiveMax := existing.SalaryMax
	if salaryMaxPresent {
		effectiveMax = salaryMax
	}
	if err := money.CheckRange(effectiveMin, effectiveMax); err != nil {
		return err
	}

	if req.CompanyID != nil {
		exists, err := s.companyRepo.Exists(ctx, *req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return companyerrors.ErrCompanyNotFound
		}
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		l.Error("failed to update advertisement", zap.Uint("ad_id", id), zap.Error(err))
		return err
	}

	l.Info("advertisement updated", zap.Uint("ad_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, nil)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return aderrors.ErrAdvertisementNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete advertisement", zap.Uint("ad_id", id), zap.Error(err))
		return err
	}

	l.Info("advertisement deleted", zap.Uint("ad_id", id))
	return nil
}

func mapToResponse(ad Advertisement) AdvertisementResponse {
	resp := AdvertisementResponse{
		AdID:         ad.AdID,
		CompanyID:    ad.CompanyID,
		Title:        ad.Title,
		Description:  ad.Description,
		Location:     ad.Location,
		SalaryMin:    ad.SalaryMin,
		SalaryMax:    ad.SalaryMax,
		ContractType: ad.ContractType,
		DatePosted:   ad.DatePosted.Format("2006-01-02 15:04:05"),
	}
	if ad.DateExpiry != nil {
		formatted := ad.DateExpiry.Format(dateLayout)
		resp.DateExpiry = &formatted
	}
	return resp
}

func mapToListResponse(ads []Advertisement) []AdvertisementResponse {
	resp := make([]AdvertisementResponse, len(ads))
	for i, ad := range ads {
		resp[i] = mapToResponse(ad)
	}
	return resp
}

func decimalOrNil(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return *d
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
