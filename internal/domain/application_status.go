package domain

// ApplicationStatus is the applications.status enum. Sent is the only creation
// state; admin updates may move between any two states, no funnel ordering is
// enforced.
type ApplicationStatus string

const (
	StatusSent      ApplicationStatus = "Sent"
	StatusInReview  ApplicationStatus = "In review"
	StatusInterview ApplicationStatus = "Interview"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusHired     ApplicationStatus = "Hired"
)

func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case StatusSent, StatusInReview, StatusInterview, StatusRejected, StatusHired:
		return ApplicationStatus(s), true
	}
	return "", false
}

func (s ApplicationStatus) String() string {
	return string(s)
}
