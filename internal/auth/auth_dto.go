package auth

// RegisterRequest checks that each required key is present, not that its
// value is non-empty; an empty password present in the payload is hashed and
// stored like any other. Required fields bind through pointers for that
// reason.
type RegisterRequest struct {
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Phone     string  `json:"phone"`
	Password  *string `json:"password" binding:"required"`
}

// LoginRequest binds presence-only as well: an empty password present in the
// payload reaches the comparison and fails as incorrect, not as malformed.
type LoginRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// AccountResponse is the login payload; the stored password never leaves the
// auth component.
type AccountResponse struct {
	PersonID  uint    `json:"person_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	CompanyID *uint   `json:"company_id"`
	CreatedAt string  `json:"created_at"`
}
