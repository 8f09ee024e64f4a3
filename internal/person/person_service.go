package person

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"go-jobboard/internal/auth"
	"go-jobboard/internal/domain"
	personerrors "go-jobboard/internal/person/errors"
	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
)

//go:generate mockgen -source=person_service.go -destination=mock/person_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]PersonResponse, error)
	Create(ctx context.Context, req CreatePersonRequest) (uint, error)
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (uint, error)
	Update(ctx context.Context, adminID, id uint, req UpdatePersonRequest) error
	Delete(ctx context.Context, adminID, id uint) error

	// ResolveAdmin backs the admin guard middleware.
	ResolveAdmin(ctx context.Context, personID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]PersonResponse, error) {
	people, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PersonResponse, len(people))
	for i, p := range people {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreatePersonRequest) (uint, error) {
	l := contextutil.GetLogger(ctx, nil)

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		return 0, personerrors.ErrInvalidRole
	}

	taken, err := s.repo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, personerrors.ErrEmailAlreadyRegistered
	}

	// Admin-created accounts without a password get a fixed default the user
	// is expected to change on first login.
	plain := req.Password
	if plain == "" {
		plain = auth.DefaultPassword
	}
	hashed, err := auth.HashPassword(plain)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return 0, err
	}

	p := &Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     strPtr(req.Phone),
		Role:      role,
		Password:  &hashed,
		CompanyID: req.CompanyID,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	l.Info("user created", zap.Uint("person_id", p.PersonID), zap.String("role", role.String()))
	return p.PersonID, nil
}

func (s *service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (uint, error) {
	l := contextutil.GetLogger(ctx, nil)

	taken, err := s.repo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, personerrors.ErrEmailAlreadyRegistered
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	firstName := req.FirstName
	if firstName == "" {
		firstName = "Admin"
	}
	lastName := req.LastName
	if lastName == "" {
		lastName = "User"
	}

	p := &Person{
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Phone:     strPtr(req.Phone),
		Role:      domain.RoleAdmin,
		Password:  &hashed,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		l.Error("failed to create admin", zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	l.Info("admin account created", zap.Uint("person_id", p.PersonID))
	return p.PersonID, nil
}

func (s *service) Update(ctx context.Context, adminID, id uint, req UpdatePersonRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	fields := map[string]any{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if len(req.CompanyID) > 0 {
		var companyID *uint
		if err := json.Unmarshal(req.CompanyID, &companyID); err != nil {
			return apperror.InvalidField("company_id")
		}
		if companyID == nil {
			fields["company_id"] = nil
		} else {
			fields["company_id"] = *companyID
		}
	}
	if req.Role != nil {
		role, ok := domain.ParseRole(*req.Role)
		if !ok {
			return personerrors.ErrInvalidRole
		}
		fields["role"] = role.String()
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return err
		}
		fields["password"] = hashed
	}
	if len(fields) == 0 {
		return apperror.ErrNoFieldsProvided
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	// An admin may not demote themselves; compared against the identity the
	// guard resolved, before any write.
	if id == adminID && req.Role != nil && *req.Role != domain.RoleAdmin.String() {
		return personerrors.ErrSelfRoleChange
	}

	if req.Email != nil {
		taken, err := s.repo.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return personerrors.ErrEmailAlreadyRegistered
		}
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		l.Error("failed to update user", zap.Uint("person_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	l.Info("user updated", zap.Uint("person_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, adminID, id uint) error {
	l := contextutil.GetLogger(ctx, nil)

	if id == adminID {
		return personerrors.ErrSelfDelete
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete user", zap.Uint("person_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	l.Info("user deleted", zap.Uint("person_id", id))
	return nil
}

func (s *service) ResolveAdmin(ctx context.Context, personID uint) error {
	p, err := s.repo.FindByID(ctx, personID)
	if err != nil {
		return personerrors.ErrAdminRequired
	}
	if p.Role != domain.RoleAdmin {
		return personerrors.ErrAdminRequired
	}
	return nil
}

func mapToResponse(p Person) PersonResponse {
	return PersonResponse{
		PersonID:  p.PersonID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      p.Role.String(),
		CompanyID: p.CompanyID,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
