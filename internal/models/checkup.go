package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Checkup statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the enumerated checkup statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

// CheckupImage is one uploaded image attached to a checkup.
type CheckupImage struct {
	URL         string    `json:"url"`         // Path returned by the file store
	Description string    `json:"description"` // Free text, may be empty
	UploadedAt  time.Time `json:"uploadedAt"`  // Upload timestamp
}

// CheckupImages is the append-only image sequence, stored as a JSONB array.
type CheckupImages []CheckupImage

// Value implements driver.Valuer for JSONB storage.
func (ci CheckupImages) Value() (driver.Value, error) {
	if ci == nil {
		ci = CheckupImages{}
	}
	return json.Marshal(ci)
}

// Scan implements sql.Scanner for JSONB storage.
func (ci *CheckupImages) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, ci)
	case string:
		return json.Unmarshal([]byte(v), ci)
	case nil:
		*ci = CheckupImages{}
		return nil
	default:
		return errors.New("unsupported type for CheckupImages")
	}
}

// CheckupDB represents a checkup record in the database.
// Patient and Dentist profiles are populated by read queries that join users.
type CheckupDB struct {
	CheckupID uuid.UUID     `json:"id" db:"checkup_id"`
	PatientID uuid.UUID     `json:"patientId" db:"patient_id"`
	DentistID uuid.UUID     `json:"dentistId" db:"dentist_id"`
	Status    string        `json:"status" db:"status"`
	Images    CheckupImages `json:"images" db:"images"`
	Notes     string        `json:"notes" db:"notes"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	Patient *UserProfile `json:"patient,omitempty" db:"-"`
	Dentist *UserProfile `json:"dentist,omitempty" db:"-"`
}
