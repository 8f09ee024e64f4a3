package auth

import (
	"context"

	"go.uber.org/zap"

	autherrors "go-jobboard/internal/auth/errors"
	"go-jobboard/internal/domain"
	"go-jobboard/internal/shared/contextutil"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (AccountResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	taken, err := s.repo.EmailTaken(ctx, *req.Email)
	if err != nil {
		return err
	}
	if taken {
		return autherrors.ErrEmailAlreadyRegistered
	}

	hashed, err := HashPassword(*req.Password)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return err
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	a := &Account{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		Email:     *req.Email,
		Phone:     phone,
		Role:      domain.RoleApplicant,
		Password:  &hashed,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		l.Error("failed to create account", zap.Error(err))
		return err
	}

	l.Info("account registered", zap.Uint("person_id", a.PersonID))
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (AccountResponse, error) {
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return AccountResponse{}, autherrors.ErrNoAccount
	}

	if a.Password == nil || *a.Password == "" {
		return AccountResponse{}, autherrors.ErrPasswordNotSet
	}

	if !VerifyPassword(password, *a.Password) {
		return AccountResponse{}, autherrors.ErrIncorrectPassword
	}

	return AccountResponse{
		PersonID:  a.PersonID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role.String(),
		CompanyID: a.CompanyID,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
