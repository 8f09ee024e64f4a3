package advertisement

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=advertisement_repo.go -destination=mock/advertisement_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ad *Advertisement) error
	FindByID(ctx context.Context, id uint) (*Advertisement, error)
	Exists(ctx context.Context, id uint) (bool, error)
	FindAll(ctx context.Context) ([]Advertisement, error)
	FindByCompany(ctx context.Context, companyID uint) ([]Advertisement, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ad *Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Advertisement, error) {
	var ad Advertisement
	err := r.db.WithContext(ctx).First(&ad, "ad_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ad, nil
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Advertisement{}).Where("ad_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Advertisement, error) {
	var ads []Advertisement
	err := r.db.WithContext(ctx).Find(&ads).Error
	return ads, err
}

func (r *repository) FindByCompany(ctx context.Context, companyID uint) ([]Advertisement, error) {
	var ads []Advertisement
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("date_posted DESC").
		Find(&ads).Error
	return ads, err
}

func (r *repository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&Advertisement{}).
		Where("ad_id = ?", id).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Advertisement{}, "ad_id = ?", id).Error
}
