package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/models"
)

// checkupRow is the scan target for checkup queries that join user profiles.
type checkupRow struct {
	models.CheckupDB
	PatientName  *string `db:"patient_name"`
	PatientEmail *string `db:"patient_email"`
	DentistName  *string `db:"dentist_name"`
	DentistEmail *string `db:"dentist_email"`
}

func (row *checkupRow) toModel() *models.CheckupDB {
	c := row.CheckupDB
	if c.Images == nil {
		c.Images = models.CheckupImages{}
	}
	if row.PatientName != nil {
		c.Patient = &models.UserProfile{
			UserID: c.PatientID,
			Name:   *row.PatientName,
			Email:  derefString(row.PatientEmail),
		}
	}
	if row.DentistName != nil {
		c.Dentist = &models.UserProfile{
			UserID: c.DentistID,
			Name:   *row.DentistName,
			Email:  derefString(row.DentistEmail),
		}
	}
	return &c
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type CheckupReadRepository struct {
	db *sqlx.DB
}

func NewCheckupReadRepository(db *sqlx.DB) *CheckupReadRepository {
	return &CheckupReadRepository{db: db}
}

// GetByID returns the checkup with both party profiles attached,
// or nil if no such record exists.
func (r *CheckupReadRepository) GetByID(ctx context.Context, checkupID uuid.UUID) (*models.CheckupDB, error) {
	const query = `
		SELECT c.checkup_id, c.patient_id, c.dentist_id, c.status, c.images, c.notes,
		       c.created_at, c.updated_at,
		       p.name AS patient_name, p.email AS patient_email,
		       d.name AS dentist_name, d.email AS dentist_email
		FROM checkups c
		JOIN users p ON p.user_id = c.patient_id
		JOIN users d ON d.user_id = c.dentist_id
		WHERE c.checkup_id = $1
	`

	var row checkupRow
	err := r.db.GetContext(ctx, &row, query, checkupID)

	logger.Log.Infow("checkup query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{checkupID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// ListByPatient returns the patient's checkups, dentist profile attached.
func (r *CheckupReadRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]models.CheckupDB, error) {
	const query = `
		SELECT c.checkup_id, c.patient_id, c.dentist_id, c.status, c.images, c.notes,
		       c.created_at, c.updated_at,
		       d.name AS dentist_name, d.email AS dentist_email
		FROM checkups c
		JOIN users d ON d.user_id = c.dentist_id
		WHERE c.patient_id = $1
		ORDER BY c.created_at DESC
	`
	return r.list(ctx, query, patientID)
}

// ListByDentist returns the dentist's checkups, patient profile attached.
func (r *CheckupReadRepository) ListByDentist(ctx context.Context, dentistID uuid.UUID) ([]models.CheckupDB, error) {
	const query = `
		SELECT c.checkup_id, c.patient_id, c.dentist_id, c.status, c.images, c.notes,
		       c.created_at, c.updated_at,
		       p.name AS patient_name, p.email AS patient_email
		FROM checkups c
		JOIN users p ON p.user_id = c.patient_id
		WHERE c.dentist_id = $1
		ORDER BY c.created_at DESC
	`
	return r.list(ctx, query, dentistID)
}

func (r *CheckupReadRepository) list(ctx context.Context, query string, ownerID uuid.UUID) ([]models.CheckupDB, error) {
	var rows []checkupRow
	err := r.db.SelectContext(ctx, &rows, query, ownerID)

	logger.Log.Infow("checkup query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID},
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	checkups := make([]models.CheckupDB, 0, len(rows))
	for i := range rows {
		checkups = append(checkups, *rows[i].toModel())
	}
	return checkups, nil
}

type CheckupWriteRepository struct {
	db *sqlx.DB
}

func NewCheckupWriteRepository(db *sqlx.DB) *CheckupWriteRepository {
	return &CheckupWriteRepository{db: db}
}

// Create inserts a new pending checkup with no images and empty notes.
func (r *CheckupWriteRepository) Create(ctx context.Context, patientID, dentistID uuid.UUID) (*models.CheckupDB, error) {
	const query = `
		INSERT INTO checkups (checkup_id, patient_id, dentist_id, status, images, notes, created_at, updated_at)
		VALUES ($1, $2, $3, 'pending', '[]'::jsonb, '', NOW(), NOW())
		RETURNING checkup_id, patient_id, dentist_id, status, images, notes, created_at, updated_at
	`
	args := []any{uuid.New(), patientID, dentistID}

	var row checkupRow
	err := r.db.GetContext(ctx, &row, query, args...)

	logger.Log.Infow("checkup insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// AppendImages concatenates new images onto the stored sequence.
// The append happens inside the UPDATE itself (jsonb || jsonb), so two
// concurrent appends on the same checkup cannot lose each other's images.
func (r *CheckupWriteRepository) AppendImages(ctx context.Context, checkupID uuid.UUID, images models.CheckupImages) (*models.CheckupDB, error) {
	const query = `
		UPDATE checkups
		SET images = images || $2::jsonb,
		    updated_at = NOW()
		WHERE checkup_id = $1
		RETURNING checkup_id, patient_id, dentist_id, status, images, notes, created_at, updated_at
	`

	payload, err := images.Value()
	if err != nil {
		return nil, err
	}

	var row checkupRow
	err = r.db.GetContext(ctx, &row, query, checkupID, payload)

	logger.Log.Infow("checkup append images",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{checkupID, len(images)},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

// UpdateStatusNotes applies the provided fields only; a nil field leaves the
// stored value untouched. updated_at is refreshed either way.
func (r *CheckupWriteRepository) UpdateStatusNotes(ctx context.Context, checkupID uuid.UUID, status, notes *string) (*models.CheckupDB, error) {
	const query = `
		UPDATE checkups
		SET status = COALESCE($2, status),
		    notes = COALESCE($3, notes),
		    updated_at = NOW()
		WHERE checkup_id = $1
		RETURNING checkup_id, patient_id, dentist_id, status, images, notes, created_at, updated_at
	`

	var row checkupRow
	err := r.db.GetContext(ctx, &row, query, checkupID, status, notes)

	logger.Log.Infow("checkup update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{checkupID, status, notes},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}
