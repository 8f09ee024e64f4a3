package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-jobboard/internal/auth"
	"go-jobboard/internal/domain"
	"go-jobboard/internal/person"
	personerrors "go-jobboard/internal/person/errors"
	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
)

//go:generate mockgen -source=candidate_service.go -destination=mock/candidate_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateCandidateRequest) (uint, error)
	Get(ctx context.Context, personID uint) (CandidateResponse, error)
	Update(ctx context.Context, personID uint, req UpdateCandidateRequest) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	personRepo person.Repository
}

func NewService(db *gorm.DB, repo Repository, personRepo person.Repository) Service {
	return &service{db: db, repo: repo, personRepo: personRepo}
}

// Create registers the Applicant person and the profile row atomically.
func (s *service) Create(ctx context.Context, req CreateCandidateRequest) (uint, error) {
	l := contextutil.GetLogger(ctx, nil)

	taken, err := s.personRepo.EmailTaken(ctx, req.Email, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, personerrors.ErrEmailAlreadyRegistered
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		l.Error("failed to hash candidate password", zap.Error(err))
		return 0, err
	}

	p := &person.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     strPtr(req.Phone),
		Role:      domain.RoleApplicant,
		Password:  &hashed,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.personRepo.WithTx(tx).Create(ctx, p); err != nil {
			return mapDuplicateEmail(err)
		}

		profile := &CandidateProfile{
			PersonID:        p.PersonID,
			Location:        strPtr(req.Location),
			Education:       strPtr(req.Education),
			Experience:      strPtr(req.Experience),
			YearsExperience: lenientInt(req.YearsExperience),
			Skills:          strPtr(req.Skills),
			About:           strPtr(req.About),
		}
		return s.repo.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return 0, appErr
		}
		l.Error("candidate creation failed", zap.Error(err))
		return 0, err
	}

	l.Info("candidate created", zap.Uint("person_id", p.PersonID))
	return p.PersonID, nil
}

// Get returns the person and profile pair; a missing row on either side comes
// back null rather than as an error, matching the consumer contract.
func (s *service) Get(ctx context.Context, personID uint) (CandidateResponse, error) {
	var resp CandidateResponse

	p, err := s.personRepo.FindByID(ctx, personID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CandidateResponse{}, err
	}
	if p != nil {
		resp.Candidate = &CandidatePersonResponse{
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

	profile, err := s.repo.FindByPerson(ctx, personID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CandidateResponse{}, err
	}
	if profile != nil {
		resp.Profile = &CandidateProfileResponse{
			PersonID:        profile.PersonID,
			Location:        profile.Location,
			Education:       profile.Education,
			Experience:      profile.Experience,
			YearsExperience: profile.YearsExperience,
			Skills:          profile.Skills,
			About:           profile.About,
		}
	}

	return resp, nil
}

// Update rewrites the contact fields on the person and the entire profile
// row. Absent payload fields clear their columns; this full-row contract
// predates the service and its consumers rely on it.
func (s *service) Update(ctx context.Context, personID uint, req UpdateCandidateRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	personFields := map[string]any{
		"first_name": derefOrNil(req.FirstName),
		"last_name":  derefOrNil(req.LastName),
		"email":      derefOrNil(req.Email),
		"phone":      derefOrNil(req.Phone),
	}

	profileFields := map[string]any{
		"location":         derefOrNil(req.Location),
		"education":        derefOrNil(req.Education),
		"experience":       derefOrNil(req.Experience),
		"years_experience": intOrNil(lenientInt(req.YearsExperience)),
		"skills":           derefOrNil(req.Skills),
		"about":            derefOrNil(req.About),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.personRepo.WithTx(tx).UpdateFields(ctx, personID, personFields); err != nil {
			return mapDuplicateEmail(err)
		}
		return s.repo.WithTx(tx).UpdateFields(ctx, personID, profileFields)
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		l.Error("candidate update failed", zap.Uint("person_id", personID), zap.Error(err))
		return err
	}

	l.Info("candidate updated", zap.Uint("person_id", personID))
	return nil
}

func mapDuplicateEmail(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return personerrors.ErrEmailAlreadyRegistered
	}
	if strings.Contains(strings.ToLower(err.Error()), "uq_people_email") {
		return personerrors.ErrEmailAlreadyRegistered
	}
	return err
}

// lenientInt coerces a raw JSON value to an int: numbers and numeric strings
// pass, anything else collapses to NULL instead of failing the request.
func lenientInt(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
