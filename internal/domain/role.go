package domain

// Role is the people.role enum. It is validated once at the request boundary
// instead of re-checked ad hoc inside each repository operation.
type Role string

const (
	RoleRecruiter Role = "Recruiter"
	RoleApplicant Role = "Applicant"
	RoleAdmin     Role = "Admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleRecruiter, RoleApplicant, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}
