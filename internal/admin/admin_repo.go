package admin

import (
	"context"

	"gorm.io/gorm"

	"go-jobboard/internal/advertisement"
	"go-jobboard/internal/application"
	"go-jobboard/internal/company"
	"go-jobboard/internal/person"
)

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	CountOverview(ctx context.Context) (OverviewResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountOverview(ctx context.Context) (OverviewResponse, error) {
	var counts OverviewResponse

	db := r.db.WithContext(ctx)
	if err := db.Model(&person.Person{}).Count(&counts.Users).Error; err != nil {
		return OverviewResponse{}, err
	}
	if err := db.Model(&company.Company{}).Count(&counts.Companies).Error; err != nil {
		return OverviewResponse{}, err
	}
	if err := db.Model(&advertisement.Advertisement{}).Count(&counts.Advertisements).Error; err != nil {
		return OverviewResponse{}, err
	}
	if err := db.Model(&application.Application{}).Count(&counts.Applications).Error; err != nil {
		return OverviewResponse{}, err
	}

	return counts, nil
}
