package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-jobboard/internal/advertisement"
	aderrors "go-jobboard/internal/advertisement/errors"
	applicationerrors "go-jobboard/internal/application/errors"
	"go-jobboard/internal/domain"
	"go-jobboard/internal/events"
	"go-jobboard/internal/messaging/kafka"
	"go-jobboard/internal/person"
	"go-jobboard/internal/shared/apperror"
	"go-jobboard/internal/shared/contextutil"
)

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitApplicationRequest) error
	ListByApplicant(ctx context.Context, applicantID uint) ([]ApplicantApplicationResponse, error)
	ListDetailed(ctx context.Context) ([]AdminApplicationResponse, error)
	ListCandidatesByAd(ctx context.Context, adID uint) ([]AdCandidateResponse, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) error

	// Delete removes without an existence check and acknowledges either way;
	// AdminDelete reports NotFound for absent rows.
	Delete(ctx context.Context, id uint) error
	AdminDelete(ctx context.Context, id uint) error
}

type service struct {
	db         *gorm.DB
	repo       Repository
	personRepo person.Repository
	adRepo     advertisement.Repository
	outboxRepo kafka.OutboxRepository
}

func NewService(
	db *gorm.DB,
	repo Repository,
	personRepo person.Repository,
	adRepo advertisement.Repository,
	outboxRepo kafka.OutboxRepository,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		personRepo: personRepo,
		adRepo:     adRepo,
		outboxRepo: outboxRepo,
	}
}

// Submit resolves or creates the applicant, enforces one application per
// (ad, applicant) pair and records the submission plus its outbox event in a
// single transaction. An inline-created applicant row does not survive a
// failure in any later step.
func (s *service) Submit(ctx context.Context, req SubmitApplicationRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	adID := *req.AdID

	var applicationID uint
	var applicantID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		people := s.personRepo.WithTx(tx)

		id, err := s.resolveApplicant(ctx, people, req)
		if err != nil {
			return err
		}
		applicantID = id

		applied, err := s.repo.WithTx(tx).ExistsByAdAndApplicant(ctx, adID, applicantID)
		if err != nil {
			return err
		}
		if applied {
			return applicationerrors.ErrAlreadyApplied
		}

		exists, err := s.adRepo.Exists(ctx, adID)
		if err != nil {
			return err
		}
		if !exists {
			return aderrors.ErrAdvertisementNotFound
		}

		app := &Application{
			AdID:        adID,
			ApplicantID: applicantID,
			Status:      domain.StatusSent,
			Message:     req.Message,
		}
		if err := s.repo.WithTx(tx).Create(ctx, app); err != nil {
			return mapSubmitError(err)
		}
		applicationID = app.ApplicationID

		payload, err := json.Marshal(events.ApplicationSubmittedEvent{
			EventType:     events.ApplicationSubmittedType,
			ApplicationID: app.ApplicationID,
			AdID:          adID,
			ApplicantID:   applicantID,
			OccurredAt:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "application",
			AggregateID:   strconv.FormatUint(uint64(app.ApplicationID), 10),
			EventType:     events.ApplicationSubmittedType,
			Topic:         events.ApplicationSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		})
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		l.Error("application submit failed", zap.Uint("ad_id", adID), zap.Error(err))
		return err
	}

	l.Info("application submitted",
		zap.Uint("application_id", applicationID),
		zap.Uint("ad_id", adID),
		zap.Uint("applicant_id", applicantID),
	)
	return nil
}

// resolveApplicant implements the inherited resolution order: an explicit
// person_id must name an existing Applicant; otherwise the email decides, and
// an unknown email registers a new Applicant by splitting the free-form name
// on whitespace (first token, last token). The split is lossy for middle
// names; kept as documented behavior.
func (s *service) resolveApplicant(
	ctx context.Context,
	people person.Repository,
	req SubmitApplicationRequest,
) (uint, error) {
	if req.PersonID != nil && *req.PersonID != 0 {
		p, err := people.FindByID(ctx, *req.PersonID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, applicationerrors.ErrInvalidApplicant
			}
			return 0, err
		}
		if p.Role != domain.RoleApplicant {
			return 0, applicationerrors.ErrNotApplicantAccount
		}
		return p.PersonID, nil
	}

	existing, err := people.FindByEmail(ctx, *req.Email)
	if err == nil {
		return existing.PersonID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	first, last := splitName(*req.Name)
	p := &person.Person{
		FirstName: first,
		LastName:  last,
		Email:     *req.Email,
		Phone:     strPtr(*req.Phone),
		Role:      domain.RoleApplicant,
	}
	if err := people.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.PersonID, nil
}

func (s *service) ListByApplicant(ctx context.Context, applicantID uint) ([]ApplicantApplicationResponse, error) {
	rows, err := s.repo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	resp := make([]ApplicantApplicationResponse, len(rows))
	for i, row := range rows {
		resp[i] = ApplicantApplicationResponse{
			ApplicationID:   row.ApplicationID,
			JobTitle:        row.JobTitle,
			Status:          row.Status,
			ApplicationDate: row.ApplicationDate.Format(timestampLayout),
			Message:         row.Message,
		}
	}
	return resp, nil
}

func (s *service) ListDetailed(ctx context.Context) ([]AdminApplicationResponse, error) {
	rows, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AdminApplicationResponse, len(rows))
	for i, row := range rows {
		resp[i] = AdminApplicationResponse{
			ApplicationID:   row.ApplicationID,
			Status:          row.Status,
			ApplicationDate: row.ApplicationDate.Format(timestampLayout),
			Message:         row.Message,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			Email:           row.Email,
			Phone:           row.Phone,
			AdID:            row.AdID,
			Title:           row.Title,
			CompanyName:     row.CompanyName,
		}
	}
	return resp, nil
}

func (s *service) ListCandidatesByAd(ctx context.Context, adID uint) ([]AdCandidateResponse, error) {
	rows, err := s.repo.ListCandidatesByAd(ctx, adID)
	if err != nil {
		return nil, err
	}

	resp := make([]AdCandidateResponse, len(rows))
	for i, row := range rows {
		resp[i] = AdCandidateResponse{
			ApplicationID:   row.ApplicationID,
			Status:          row.Status,
			ApplicationDate: row.ApplicationDate.Format(timestampLayout),
			Message:         row.Message,
			PersonID:        row.PersonID,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			Email:           row.Email,
			Phone:           row.Phone,
			Location:        row.Location,
			Education:       row.Education,
			Experience:      row.Experience,
			YearsExperience: row.YearsExperience,
			Skills:          row.Skills,
			About:           row.About,
		}
	}
	return resp, nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) error {
	l := contextutil.GetLogger(ctx, nil)

	status, ok := domain.ParseApplicationStatus(req.Status)
	if !ok {
		return applicationerrors.ErrInvalidStatus
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return applicationerrors.ErrApplicationNotFound
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		l.Error("failed to update application status",
			zap.Uint("application_id", id),
			zap.Error(err),
		)
		return err
	}

	l.Info("application status updated",
		zap.Uint("application_id", id),
		zap.String("status", status.String()),
	)
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AdminDelete(ctx context.Context, id uint) error {
	l := contextutil.GetLogger(ctx, nil)

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return applicationerrors.ErrApplicationNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		l.Error("failed to delete application", zap.Uint("application_id", id), zap.Error(err))
		return err
	}

	l.Info("application deleted", zap.Uint("application_id", id))
	return nil
}

const timestampLayout = "2006-01-02 15:04:05"

// mapSubmitError turns a unique-index race on (ad_id, applicant_id) into the
// same conflict the pre-check reports.
func mapSubmitError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return applicationerrors.ErrAlreadyApplied
	}
	if strings.Contains(err.Error(), "uq_applications_ad_applicant") {
		return applicationerrors.ErrAlreadyApplied
	}
	return err
}

func splitName(name string) (first, last string) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return "", ""
	}
	return tokens[0], tokens[len(tokens)-1]
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
