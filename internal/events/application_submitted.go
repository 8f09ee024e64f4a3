package events

import "time"

const ApplicationSubmittedTopic = "jobboard.application.lifecycle.v1"

const ApplicationSubmittedType = "application.submitted"

type ApplicationSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	ApplicationID uint      `json:"application_id"`
	AdID          uint      `json:"ad_id"`
	ApplicantID   uint      `json:"applicant_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
