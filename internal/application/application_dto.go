package application

// SubmitApplicationRequest carries presence-checked fields: the surface
// historically accepted empty strings as long as the key was sent, so the
// string fields bind through pointers.
type SubmitApplicationRequest struct {
	AdID     *uint   `json:"ad_id" binding:"required"`
	Name     *string `json:"name" binding:"required"`
	Email    *string `json:"email" binding:"required"`
	Phone    *string `json:"phone" binding:"required"`
	Message  *string `json:"message" binding:"required"`
	PersonID *uint   `json:"person_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicantApplicationResponse is the applicant-facing listing row, joined
// with the advertisement title.
type ApplicantApplicationResponse struct {
	ApplicationID   uint    `json:"application_id"`
	JobTitle        string  `json:"job_title"`
	Status          string  `json:"status"`
	ApplicationDate string  `json:"application_date"`
	Message         *string `json:"message"`
}

// AdminApplicationResponse is the admin listing row, joined across the
// applicant, the advertisement and its company.
type AdminApplicationResponse struct {
	ApplicationID   uint    `json:"application_id"`
	Status          string  `json:"status"`
	ApplicationDate string  `json:"application_date"`
	Message         *string `json:"message"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	AdID            uint    `json:"ad_id"`
	Title           string  `json:"title"`
	CompanyName     string  `json:"company_name"`
}

// AdCandidateResponse is one applicant of an advertisement, with the
// candidate profile columns left-joined in (null when no profile exists).
type AdCandidateResponse struct {
	ApplicationID   uint    `json:"application_id"`
	Status          string  `json:"status"`
	ApplicationDate string  `json:"application_date"`
	Message         *string `json:"message"`
	PersonID        uint    `json:"person_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	Education       *string `json:"education"`
	Experience      *string `json:"experience"`
	YearsExperience *int    `json:"years_experience"`
	Skills          *string `json:"skills"`
	About           *string `json:"about"`
}
