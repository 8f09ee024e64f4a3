package auth

import (
	"time"

	"go-jobboard/internal/domain"
)

// Account is the auth view of a people row.
type Account struct {
	PersonID  uint        `gorm:"column:person_id;primaryKey;autoIncrement"`
	FirstName string      `gorm:"column:first_name"`
	LastName  string      `gorm:"column:last_name"`
	Email     string      `gorm:"column:email"`
	Phone     *string     `gorm:"column:phone"`
	Role      domain.Role `gorm:"column:role"`
	Password  *string     `gorm:"column:password"`
	CompanyID *uint       `gorm:"column:company_id"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
}

func (Account) TableName() string {
	return "people"
}
