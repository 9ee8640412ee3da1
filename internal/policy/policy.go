// Package policy holds the pure access decisions for checkup records.
// No side effects: callers translate a false result into a 403.
package policy

import (
	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/models"
)

// CanCreate reports whether a caller may request a new checkup.
// Any authenticated caller may, naming themselves patient.
func CanCreate(callerID uuid.UUID) bool {
	return callerID != uuid.Nil
}

// CanRead reports whether the caller is a party to the checkup.
func CanRead(callerID uuid.UUID, c *models.CheckupDB) bool {
	if c == nil {
		return false
	}
	return callerID == c.PatientID || callerID == c.DentistID
}

// CanMutate reports whether the caller owns the checkup as its dentist.
// Notes, status and image appends all share this rule.
func CanMutate(callerID uuid.UUID, c *models.CheckupDB) bool {
	if c == nil {
		return false
	}
	return callerID == c.DentistID
}

// CanExport follows the read rule.
func CanExport(callerID uuid.UUID, c *models.CheckupDB) bool {
	return CanRead(callerID, c)
}
