package person

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=person_repo.go -destination=mock/person_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Person) error
	FindByID(ctx context.Context, id uint) (*Person, error)
	FindByEmail(ctx context.Context, email string) (*Person, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	FindAll(ctx context.Context) ([]Person, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
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

func (r *repository) Create(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).First(&p, "person_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).First(&p, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// EmailTaken is the fast-path uniqueness pre-check; excludeID skips the row
// being updated. The unique index remains the last word.
func (r *repository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&Person{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("person_id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Person, error) {
	var people []Person
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&people).Error
	return people, err
}

func (r *repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Person{}).
		Where("person_id = ?", id).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Person{}, "person_id = ?", id).Error
}
