package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ashokchittari/dentoCare/internal/models"
)

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(uuid.New()))
	assert.False(t, CanCreate(uuid.Nil))
}

func TestReadAndMutateRules(t *testing.T) {
	patientID := uuid.New()
	dentistID := uuid.New()
	strangerID := uuid.New()

	checkup := &models.CheckupDB{
		CheckupID: uuid.New(),
		PatientID: patientID,
		DentistID: dentistID,
	}

	tests := []struct {
		name       string
		callerID   uuid.UUID
		canRead    bool
		canMutate  bool
		canExport  bool
	}{
		{"patient reads but cannot mutate", patientID, true, false, true},
		{"dentist reads and mutates", dentistID, true, true, true},
		{"third party gets nothing", strangerID, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canRead, CanRead(tt.callerID, checkup))
			assert.Equal(t, tt.canMutate, CanMutate(tt.callerID, checkup))
			assert.Equal(t, tt.canExport, CanExport(tt.callerID, checkup))
		})
	}
}

func TestNilCheckup(t *testing.T) {
	callerID := uuid.New()
	assert.False(t, CanRead(callerID, nil))
	assert.False(t, CanMutate(callerID, nil))
	assert.False(t, CanExport(callerID, nil))
}
