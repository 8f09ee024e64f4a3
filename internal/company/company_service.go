package company

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-jobboard/internal/auth"
	companyerrors "go-jobboard/internal/company/errors"
	"go-jobboard/internal/domain"
	"go-jobboard/internal/person"
	personerrors "go-jobboard/internal/person/errors"
	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id uint) (CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (uint, error)
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
	Update(ctx context.Context, id uint, req UpdateCompanyRequest) error
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	personRepo person.Repository
}

func NewService(db *gorm.DB, repo Repository, personRepo person.Repository) Service {
	return &service{db: db, repo: repo, personRepo: personRepo}
}

func (s *service) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (CompanyResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (uint, error) {
	l := contextutil.GetLogger(ctx, nil)

	c := &Company{
		Name:     req.Name,
		Industry: strPtr(req.Industry),
		Size:     strPtr(req.Size),
		Website:  strPtr(req.Website),
		Email:    strPtr(req.Email),
		Phone:    strPtr(req.Phone),
		Address:  strPtr(req.Address),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		l.Error("failed to create company", zap.Error(err))
		return 0, err
	}

	l.Info("company created", zap.Uint("company_id", c.CompanyID))
	return c.CompanyID, nil
}

// Signup creates the company and its first recruiter atomically: if either
// insert fails, neither row survives.
func (s *service) Signup(ctx context.Context, req SignupRequest) (SignupResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	taken, err := s.personRepo.EmailTaken(ctx, req.Recruiter.Email, 0)
	if err != nil {
		return SignupResponse{}, err
	}
	if taken {
		return SignupResponse{}, personerrors.ErrEmailAlreadyRegistered
	}

	hashed, err := auth.HashPassword(req.Recruiter.Password)
	if err != nil {
		l.Error("failed to hash recruiter password", zap.Error(err))
		return SignupResponse{}, err
	}

	c := &Company{
		Name:     req.Company.Name,
		Industry: strPtr(req.Company.Industry),
		Size:     strPtr(req.Company.Size),
		Website:  strPtr(req.Company.Website),
		Email:    strPtr(req.Company.Email),
		Phone:    strPtr(req.Company.Phone),
		Address:  strPtr(req.Company.Address),
	}

	var recruiter *person.Person

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, c); err != nil {
			return err
		}

		recruiter = &person.Person{
			FirstName: req.Recruiter.FirstName,
			LastName:  req.Recruiter.LastName,
			Email:     req.Recruiter.Email,
			Phone:     strPtr(req.Recruiter.Phone),
			Role:      domain.RoleRecruiter,
			Password:  &hashed,
			CompanyID: &c.CompanyID,
		}
		if err := s.personRepo.WithTx(tx).Create(ctx, recruiter); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		l.Error("company signup failed", zap.Error(err))
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return SignupResponse{}, appErr
		}
		return SignupResponse{}, err
	}

	l.Info("company account created",
		zap.Uint("company_id", c.CompanyID),
		zap.Uint("recruiter_id", recruiter.PersonID),
	)

	return SignupResponse{
		CompanyID:   c.CompanyID,
		RecruiterID: recruiter.PersonID,
		Recruiter: person.PersonResponse{
			PersonID:  recruiter.PersonID,
			FirstName: recruiter.FirstName,
			LastName:  recruiter.LastName,
			Email:     recruiter.Email,
			Phone:     recruiter.Phone,
			Role:      recruiter.Role.String(),
			CompanyID: recruiter.CompanyID,
			CreatedAt: recruiter.CreatedAt.Format("2006-01-02 15:04:05"),
		},
	}, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateCompanyRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Industry != nil {
		fields["industry"] = *req.Industry
	}
	if req.Size != nil {
		fields["size"] = *req.Size
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return apperror.ErrNoFieldsProvided
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return companyerrors.ErrCompanyNotFound
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		l.Error("failed to update company", zap.Uint("company_id", id), zap.Error(err))
		return err
	}

	l.Info("company updated", zap.Uint("company_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, nil)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return companyerrors.ErrCompanyNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete company", zap.Uint("company_id", id), zap.Error(err))
		return err
	}

	l.Info("company deleted", zap.Uint("company_id", id))
	return nil
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Industry:  c.Industry,
		Size:      c.Size,
		Website:   c.Website,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
