package advertisement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Advertisement struct {
	AdID         uint             `gorm:"column:ad_id;primaryKey;autoIncrement"`
	CompanyID    uint             `gorm:"column:company_id;not null;index"`
	Title        string           `gorm:"column:title;type:varchar(255);not null"`
	Description  string           `gorm:"column:description;type:text;not null"`
	Location     *string          `gorm:"column:location;type:varchar(255)"`
	SalaryMin    *decimal.Decimal `gorm:"column:salary_min;type:decimal(10,2)"`
	SalaryMax    *decimal.Decimal `gorm:"column:salary_max;type:decimal(10,2)"`
	ContractType *string          `gorm:"column:contract_type;type:varchar(50)"`
	DatePosted   time.Time        `gorm:"column:date_posted;autoCreateTime"`
	DateExpiry   *time.Time       `gorm:"column:date_expiry"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}
