package candidate

// CandidateProfile extends an Applicant person one-to-one with job-search
// attributes. The row shares the person's id instead of carrying its own.
type CandidateProfile struct {
	PersonID        uint    `gorm:"column:person_id;primaryKey"`
	Location        *string `gorm:"column:location;type:varchar(255)"`
	Education       *string `gorm:"column:education;type:text"`
	Experience      *string `gorm:"column:experience;type:text"`
	YearsExperience *int    `gorm:"column:years_experience"`
	Skills          *string `gorm:"column:skills;type:text"`
	About           *string `gorm:"column:about;type:text"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}
