package person

import "encoding/json"

type CreatePersonRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
	Password  string `json:"password"`
	CompanyID *uint  `json:"company_id"`
}

type CreateAdminRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Password  string `json:"password" binding:"required"`
}

// UpdatePersonRequest is a partial update: only provided fields are touched.
// company_id binds raw so an explicit null, which clears the company link,
// stays distinguishable from the key being absent.
type UpdatePersonRequest struct {
	FirstName *string         `json:"first_name"`
	LastName  *string         `json:"last_name"`
	Email     *string         `json:"email"`
	Phone     *string         `json:"phone"`
	Role      *string         `json:"role"`
	CompanyID json.RawMessage `json:"company_id"`
	Password  *string         `json:"password"`
}

// PersonResponse never carries the stored password.
type PersonResponse struct {
	PersonID  uint    `json:"person_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	CompanyID *uint   `json:"company_id"`
	CreatedAt string  `json:"created_at"`
}
