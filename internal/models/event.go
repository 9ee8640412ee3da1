package models

import "time"

// Checkup event types published to the notification stream.
const (
	EventCheckupCreated  = "checkup_created"
	EventImagesAdded     = "images_added"
	EventCheckupUpdated  = "checkup_updated"
)

// CheckupEvent is the message published when a checkup changes.
type CheckupEvent struct {
	EventID    string    `json:"event_id"`
	CheckupID  string    `json:"checkup_id"`
	PatientID  string    `json:"patient_id"`
	DentistID  string    `json:"dentist_id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}
