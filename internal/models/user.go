package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RolePatient = "patient"
	RoleDentist = "dentist"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`             // Primary key
	Name         string    `json:"name" db:"name"`              // Display name
	Email        string    `json:"email" db:"email"`            // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`        // Hashed password, never serialized
	Role         string    `json:"role" db:"role"`              // patient or dentist
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`   // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`   // Last update timestamp
}

// UserProfile is the public slice of a user attached to checkups.
type UserProfile struct {
	UserID uuid.UUID `json:"id" db:"user_id"`
	Name   string    `json:"name" db:"name"`
	Email  string    `json:"email" db:"email"`
}

// Profile returns the public profile of a user.
func (u *UserDB) Profile() *UserProfile {
	return &UserProfile{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}
