package candidate

import "encoding/json"

// CreateCandidateRequest registers an Applicant together with their profile.
// years_experience historically arrived as either a number or a string and is
// coerced leniently, so it binds raw.
type CreateCandidateRequest struct {
	FirstName       string          `json:"first_name" binding:"required"`
	LastName        string          `json:"last_name" binding:"required"`
	Email           string          `json:"email" binding:"required"`
	Password        string          `json:"password" binding:"required"`
	Phone           string          `json:"phone"`
	Location        string          `json:"location"`
	Education       string          `json:"education"`
	Experience      string          `json:"experience"`
	YearsExperience json.RawMessage `json:"years_experience"`
	Skills          string          `json:"skills"`
	About           string          `json:"about"`
}

// UpdateCandidateRequest rewrites the person contact fields and the whole
// profile row: fields left out of the payload are cleared, not kept.
type UpdateCandidateRequest struct {
	FirstName       *string         `json:"first_name"`
	LastName        *string         `json:"last_name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	Location        *string         `json:"location"`
	Education       *string         `json:"education"`
	Experience      *string         `json:"experience"`
	YearsExperience json.RawMessage `json:"years_experience"`
	Skills          *string         `json:"skills"`
	About           *string         `json:"about"`
}

type CandidatePersonResponse struct {
	PersonID  uint    `json:"person_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	CompanyID *uint   `json:"company_id"`
	CreatedAt string  `json:"created_at"`
}

type CandidateProfileResponse struct {
	PersonID        uint    `json:"person_id"`
	Location        *string `json:"location"`
	Education       *string `json:"education"`
	Experience      *string `json:"experience"`
	YearsExperience *int    `json:"years_experience"`
	Skills          *string `json:"skills"`
	About           *string `json:"about"`
}

// CandidateResponse pairs the person with their profile; either side may be
// null when the row does not exist.
type CandidateResponse struct {
	Candidate *CandidatePersonResponse  `json:"candidate"`
	Profile   *CandidateProfileResponse `json:"profile"`
}
