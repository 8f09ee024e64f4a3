package company

import "go-jobboard/internal/person"

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Website  string `json:"website"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// SignupRequest is the public company-account creation payload: the company
// and its first recruiter are created together or not at all.
type SignupRequest struct {
	Company   CompanySignup   `json:"company" binding:"required"`
	Recruiter RecruiterSignup `json:"recruiter" binding:"required"`
}

type CompanySignup struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry" binding:"required"`
	Size     string `json:"size" binding:"required"`
	Website  string `json:"website"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type RecruiterSignup struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// UpdateCompanyRequest is a partial update: only non-nil fields are touched.
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Size     *string `json:"size"`
	Website  *string `json:"website"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type CompanyResponse struct {
	CompanyID uint    `json:"company_id"`
	Name      string  `json:"name"`
	Industry  *string `json:"industry"`
	Size      *string `json:"size"`
	Website   *string `json:"website"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type SignupResponse struct {
	CompanyID   uint                  `json:"company_id"`
	RecruiterID uint                  `json:"recruiter_id"`
	Recruiter   person.PersonResponse `json:"recruiter"`
}
