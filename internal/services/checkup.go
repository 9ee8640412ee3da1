package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/policy"
)

// MaxImagesPerUpload caps the files accepted by one image-attach call.
const MaxImagesPerUpload = 5

var (
	// ErrCheckupNotFound is returned when the requested checkup id does not exist.
	ErrCheckupNotFound = errors.New("checkup not found")
	// ErrNotAllowed is returned when the caller fails the access policy check.
	ErrNotAllowed = errors.New("not authorized")
	// ErrDentistNotFound is returned when the named dentist does not exist or lacks the dentist role.
	ErrDentistNotFound = errors.New("dentist not found")
	// ErrInvalidStatus is returned for a status outside the enumerated set.
	ErrInvalidStatus = errors.New("status must be pending or completed")
	// ErrTooManyImages is returned when an upload batch exceeds MaxImagesPerUpload.
	ErrTooManyImages = errors.New("too many images in one upload")
)

// CheckupReader defines read operations on checkup records.
type CheckupReader interface {
	GetByID(ctx context.Context, checkupID uuid.UUID) (*models.CheckupDB, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]models.CheckupDB, error)
	ListByDentist(ctx context.Context, dentistID uuid.UUID) ([]models.CheckupDB, error)
}

// CheckupWriter defines write operations on checkup records.
type CheckupWriter interface {
	Create(ctx context.Context, patientID, dentistID uuid.UUID) (*models.CheckupDB, error)
	AppendImages(ctx context.Context, checkupID uuid.UUID, images models.CheckupImages) (*models.CheckupDB, error)
	UpdateStatusNotes(ctx context.Context, checkupID uuid.UUID, status, notes *string) (*models.CheckupDB, error)
}

// FileSaver stores uploaded file contents and returns an addressable path.
type FileSaver interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// ReportRenderer turns a populated checkup into document bytes.
type ReportRenderer interface {
	Render(ctx context.Context, c *models.CheckupDB) ([]byte, error)
}

// ReportCache caches rendered report bytes keyed by checkup state.
type ReportCache interface {
	Get(ctx context.Context, checkupID uuid.UUID, updatedAt time.Time) ([]byte, error)
	Set(ctx context.Context, checkupID uuid.UUID, updatedAt time.Time, data []byte) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ImageUpload is one file in an image-attach batch.
type ImageUpload struct {
	Name        string    // original filename, extension is preserved
	Description string    // free text, may be empty
	Reader      io.Reader // file contents
}

// CheckupService orchestrates repository, policy, storage and renderer
// to implement the checkup use cases.
type CheckupService struct {
	readRepo    CheckupReader
	writeRepo   CheckupWriter
	users       UserReader
	files       FileSaver
	renderer    ReportRenderer
	cache       ReportCache
	kafkaWriter KafkaWriter
}

// NewCheckupService creates a new CheckupService. cache and kafkaWriter may
// be nil; caching and event publishing are then skipped.
func NewCheckupService(
	readRepo CheckupReader,
	writeRepo CheckupWriter,
	users UserReader,
	files FileSaver,
	renderer ReportRenderer,
	cache ReportCache,
	kafkaWriter KafkaWriter,
) *CheckupService {
	return &CheckupService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		users:       users,
		files:       files,
		renderer:    renderer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Request creates a pending checkup naming the caller as patient.
// The named dentist must exist and hold the dentist role.
func (svc *CheckupService) Request(ctx context.Context, callerID, dentistID uuid.UUID) (*models.CheckupDB, error) {
	if !policy.CanCreate(callerID) {
		return nil, ErrNotAllowed
	}

	dentist, err := svc.users.GetByID(ctx, dentistID)
	if err != nil {
		logger.Log.Errorw("failed to look up dentist", "dentist_id", dentistID, "err", err)
		return nil, err
	}
	if dentist == nil || dentist.Role != models.RoleDentist {
		return nil, ErrDentistNotFound
	}

	checkup, err := svc.writeRepo.Create(ctx, callerID, dentistID)
	if err != nil {
		logger.Log.Errorw("failed to create checkup", "err", err)
		return nil, err
	}

	svc.publishEvent(ctx, checkup, models.EventCheckupCreated)
	return checkup, nil
}

// ListForPatient returns the caller's checkups as patient, dentist profiles attached.
func (svc *CheckupService) ListForPatient(ctx context.Context, callerID uuid.UUID) ([]models.CheckupDB, error) {
	return svc.readRepo.ListByPatient(ctx, callerID)
}

// ListForDentist returns the caller's checkups as dentist, patient profiles attached.
func (svc *CheckupService) ListForDentist(ctx context.Context, callerID uuid.UUID) ([]models.CheckupDB, error) {
	return svc.readRepo.ListByDentist(ctx, callerID)
}

// Get returns one checkup with both profiles populated, gated by the read policy.
func (svc *CheckupService) Get(ctx context.Context, callerID, checkupID uuid.UUID) (*models.CheckupDB, error) {
	checkup, err := svc.readRepo.GetByID(ctx, checkupID)
	if err != nil {
		logger.Log.Errorw("failed to get checkup", "checkup_id", checkupID, "err", err)
		return nil, err
	}
	if checkup == nil {
		return nil, ErrCheckupNotFound
	}
	if !policy.CanRead(callerID, checkup) {
		return nil, ErrNotAllowed
	}
	return checkup, nil
}

// AttachImages stores the uploaded files and appends them to the checkup,
// preserving submission order. Only the owning dentist may attach.
func (svc *CheckupService) AttachImages(ctx context.Context, callerID, checkupID uuid.UUID, uploads []ImageUpload) (*models.CheckupDB, error) {
	if len(uploads) > MaxImagesPerUpload {
		return nil, ErrTooManyImages
	}

	checkup, err := svc.readRepo.GetByID(ctx, checkupID)
	if err != nil {
		logger.Log.Errorw("failed to get checkup", "checkup_id", checkupID, "err", err)
		return nil, err
	}
	if checkup == nil {
		return nil, ErrCheckupNotFound
	}
	if !policy.CanMutate(callerID, checkup) {
		return nil, ErrNotAllowed
	}

	images := make(models.CheckupImages, 0, len(uploads))
	for _, upload := range uploads {
		url, err := svc.files.Save(ctx, upload.Name, upload.Reader)
		// Each file is released as soon as its bytes are stored, not at the
		// end of the batch.
		if closer, ok := upload.Reader.(io.Closer); ok {
			closer.Close()
		}
		if err != nil {
			logger.Log.Errorw("failed to store upload", "checkup_id", checkupID, "name", upload.Name, "err", err)
			return nil, err
		}
		images = append(images, models.CheckupImage{
			URL:         url,
			Description: upload.Description,
			UploadedAt:  time.Now().UTC(),
		})
	}

	updated, err := svc.writeRepo.AppendImages(ctx, checkupID, images)
	if err != nil {
		logger.Log.Errorw("failed to append images", "checkup_id", checkupID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrCheckupNotFound
	}

	svc.publishEvent(ctx, updated, models.EventImagesAdded)
	return updated, nil
}

// Update applies a partial status/notes update. An empty field is treated as
// not provided and leaves the stored value unchanged; this matches the
// endpoint's historical behavior and means notes cannot be cleared here.
func (svc *CheckupService) Update(ctx context.Context, callerID, checkupID uuid.UUID, status, notes string) (*models.CheckupDB, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	checkup, err := svc.readRepo.GetByID(ctx, checkupID)
	if err != nil {
		logger.Log.Errorw("failed to get checkup", "checkup_id", checkupID, "err", err)
		return nil, err
	}
	if checkup == nil {
		return nil, ErrCheckupNotFound
	}
	if !policy.CanMutate(callerID, checkup) {
		return nil, ErrNotAllowed
	}

	var statusPtr, notesPtr *string
	if status != "" {
		statusPtr = &status
	}
	if notes != "" {
		notesPtr = &notes
	}

	updated, err := svc.writeRepo.UpdateStatusNotes(ctx, checkupID, statusPtr, notesPtr)
	if err != nil {
		logger.Log.Errorw("failed to update checkup", "checkup_id", checkupID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrCheckupNotFound
	}

	svc.publishEvent(ctx, updated, models.EventCheckupUpdated)
	return updated, nil
}

// Export renders the checkup report, gated by the export policy.
// Returns the document bytes and the download filename.
func (svc *CheckupService) Export(ctx context.Context, callerID, checkupID uuid.UUID) ([]byte, string, error) {
	checkup, err := svc.readRepo.GetByID(ctx, checkupID)
	if err != nil {
		logger.Log.Errorw("failed to get checkup", "checkup_id", checkupID, "err", err)
		return nil, "", err
	}
	if checkup == nil {
		return nil, "", ErrCheckupNotFound
	}
	if !policy.CanExport(callerID, checkup) {
		return nil, "", ErrNotAllowed
	}

	filename := fmt.Sprintf("checkup-%s.pdf", checkup.CheckupID)

	if svc.cache != nil {
		if data, err := svc.cache.Get(ctx, checkup.CheckupID, checkup.UpdatedAt); err == nil && data != nil {
			return data, filename, nil
		}
	}

	data, err := svc.renderer.Render(ctx, checkup)
	if err != nil {
		logger.Log.Errorw("failed to render report", "checkup_id", checkupID, "err", err)
		return nil, "", err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, checkup.CheckupID, checkup.UpdatedAt, data); err != nil {
			logger.Log.Warnw("failed to cache report", "checkup_id", checkupID, "err", err)
		}
	}

	return data, filename, nil
}

// publishEvent publishes a checkup lifecycle event to Kafka.
func (svc *CheckupService) publishEvent(ctx context.Context, checkup *models.CheckupDB, eventType string) {
	if svc.kafkaWriter == nil {
		return
	}

	event := models.CheckupEvent{
		EventID:    uuid.New().String(),
		CheckupID:  checkup.CheckupID.String(),
		PatientID:  checkup.PatientID.String(),
		DentistID:  checkup.DentistID.String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal checkup event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CheckupID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish checkup event", "event_id", event.EventID, "error", err)
		return
	}

	logger.Log.Infow("checkup event published", "event_id", event.EventID, "type", eventType)
}
