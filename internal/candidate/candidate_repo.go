package candidate

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=candidate_repo.go -destination=mock/candidate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, profile *CandidateProfile) error
	FindByPerson(ctx context.Context, personID uint) (*CandidateProfile, error)
	UpdateFields(ctx context.Context, personID uint, fields map[string]any) error
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

func (r *repository) Create(ctx context.Context, profile *CandidateProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindByPerson(ctx context.Context, personID uint) (*CandidateProfile, error) {
	var profile CandidateProfile
	err := r.db.WithContext(ctx).First(&profile, "person_id = ?", personID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) UpdateFields(ctx context.Context, personID uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&CandidateProfile{}).
		Where("person_id = ?", personID).
		Updates(fields).Error
}
