package application

import (
	"context"
	"time"

	"gorm.io/gorm"

	"go-jobboard/internal/domain"
)

// ApplicantApplicationRow is the raw join row behind the applicant listing.
type ApplicantApplicationRow struct {
	ApplicationID   uint
	JobTitle        string
	Status          string
	ApplicationDate time.Time
	Message         *string
}

// AdminApplicationRow is the raw join row behind the admin listing.
type AdminApplicationRow struct {
	ApplicationID   uint
	Status          string
	ApplicationDate time.Time
	Message         *string
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	AdID            uint
	Title           string
	CompanyName     string
}

// AdCandidateRow is the raw join row behind the per-advertisement candidate
// listing, with the profile columns nullable.
type AdCandidateRow struct {
	ApplicationID   uint
	Status          string
	ApplicationDate time.Time
	Message         *string
	PersonID        uint
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Location        *string
	Education       *string
	Experience      *string
	YearsExperience *int
	Skills          *string
	About           *string
}

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Application) error
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByAdAndApplicant(ctx context.Context, adID, applicantID uint) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uint) ([]ApplicantApplicationRow, error)
	ListDetailed(ctx context.Context) ([]AdminApplicationRow, error)
	ListCandidatesByAd(ctx context.Context, adID uint) ([]AdCandidateRow, error)
	UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("application_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ExistsByAdAndApplicant(ctx context.Context, adID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Application{}).
		Where("ad_id = ? AND applicant_id = ?", adID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListByApplicant(ctx context.Context, applicantID uint) ([]ApplicantApplicationRow, error) {
	query := `
SELECT a.application_id, ad.title AS job_title, a.status, a.application_date, a.message
FROM applications a
JOIN advertisements ad ON a.ad_id = ad.ad_id
WHERE a.applicant_id = ?
ORDER BY a.application_date DESC
`
	var rows []ApplicantApplicationRow
	err := r.db.WithContext(ctx).Raw(query, applicantID).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListDetailed(ctx context.Context) ([]AdminApplicationRow, error) {
	query := `
SELECT
	a.application_id,
	a.status,
	a.application_date,
	a.message,
	p.first_name,
	p.last_name,
	p.email,
	p.phone,
	ad.ad_id,
	ad.title,
	c.name AS company_name
FROM applications a
JOIN people p ON p.person_id = a.applicant_id
JOIN advertisements ad ON ad.ad_id = a.ad_id
JOIN companies c ON c.company_id = ad.company_id
ORDER BY a.application_date DESC
`
	var rows []AdminApplicationRow
	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) ListCandidatesByAd(ctx context.Context, adID uint) ([]AdCandidateRow, error) {
	query := `
SELECT
	a.application_id,
	a.status,
	a.application_date,
	a.message,
	p.person_id,
	p.first_name,
	p.last_name,
	p.email,
	p.phone,
	cp.location,
	cp.education,
	cp.experience,
	cp.years_experience,
	cp.skills,
	cp.about
FROM applications a
JOIN people p ON a.applicant_id = p.person_id
LEFT JOIN candidate_profiles cp ON cp.person_id = p.person_id
WHERE a.ad_id = ?
ORDER BY a.application_date DESC
`
	var rows []AdCandidateRow
	err := r.db.WithContext(ctx).Raw(query, adID).Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status domain.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&Application{}).
		Where("application_id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Application{}, "application_id = ?", id).Error
}
