package application

import (
	"time"

	"go-jobboard/internal/domain"
)

type Application struct {
	ApplicationID uint `gorm:"column:application_id;primaryKey;autoIncrement"`
	AdID          uint `gorm:"column:ad_id;not null;uniqueIndex:uq_applications_ad_applicant"`
	ApplicantID   uint `gorm:"column:applicant_id;not null;uniqueIndex:uq_applications_ad_applicant"`
	// RecruiterID is assigned once a recruiter picks the application up;
	// submissions always start unassigned.
	RecruiterID     *uint                    `gorm:"column:recruiter_id"`
	Status          domain.ApplicationStatus `gorm:"column:status;type:varchar(20);not null;default:Sent"`
	ApplicationDate time.Time                `gorm:"column:application_date;autoCreateTime"`
	Message         *string                  `gorm:"column:message;type:text"`
}

func (Application) TableName() string {
	return "applications"
}
