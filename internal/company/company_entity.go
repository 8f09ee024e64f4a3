package company

type Company struct {
	CompanyID uint    `gorm:"column:company_id;primaryKey;autoIncrement"`
	Name      string  `gorm:"column:name;type:varchar(255);not null"`
	Industry  *string `gorm:"column:industry;type:varchar(100)"`
	Size      *string `gorm:"column:size;type:varchar(50)"`
	Website   *string `gorm:"column:website;type:varchar(255)"`
	Email     *string `gorm:"column:email;type:varchar(255)"`
	Phone     *string `gorm:"column:phone;type:varchar(30)"`
	Address   *string `gorm:"column:address;type:text"`
}

func (Company) TableName() string {
	return "companies"
}
