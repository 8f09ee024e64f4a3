package person

import (
	"time"

	"go-jobboard/internal/domain"
)

type Person struct {
	PersonID  uint        `gorm:"column:person_id;primaryKey;autoIncrement"`
	FirstName string      `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string      `gorm:"column:last_name;type:varchar(100);not null"`
	Email     string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_people_email"`
	Phone     *string     `gorm:"column:phone;type:varchar(30)"`
	Role      domain.Role `gorm:"column:role;type:varchar(20);not null"`
	Password  *string     `gorm:"column:password;type:text"`
	// CompanyID stays nullable even for Recruiter rows. The schema never
	// enforced the recruiter-company link; known data-integrity gap, kept.
	CompanyID *uint     `gorm:"column:company_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Person) TableName() string {
	return "people"
}
