package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
	"github.com/Ashokchittari/dentoCare/internal/storage"
)

// maxMultipartMemory bounds in-memory buffering while parsing uploads.
const maxMultipartMemory = 32 << 20

// ImageAttacher defines the interface for appending images to a checkup.
type ImageAttacher interface {
	AttachImages(ctx context.Context, callerID, checkupID uuid.UUID, uploads []services.ImageUpload) (*models.CheckupDB, error)
}

// NewAttachImagesHandler returns an HTTP handler for uploading checkup images.
// Accepts up to five files in the "images" field; the "descriptions" field
// is index-aligned with the files and defaults to empty string.
// @Summary Upload checkup images
// @Description Appends up to 5 images to a checkup; dentist only
// @Tags checkups
// @Accept mpfd
// @Produce json
// @Param id path string true "Checkup id"
// @Param images formData file true "Image files"
// @Param descriptions formData string false "Per-image descriptions"
// @Success 200 {object} models.CheckupDB "Updated checkup"
// @Failure 400 {object} handlers.ErrorResponse "Invalid upload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Checkup not found"
// @Router /api/checkups/{id}/images [post]
// @Security CookieAuth
func NewAttachImagesHandler(svc ImageAttacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		checkupID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMessage(w, http.StatusNotFound, "Checkup not found")
			return
		}

		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			writeMessage(w, http.StatusBadRequest, "No images provided")
			return
		}
		if len(files) > services.MaxImagesPerUpload {
			writeMessage(w, http.StatusBadRequest, "Too many images in one upload")
			return
		}
		descriptions := r.MultipartForm.Value["descriptions"]

		uploads := make([]services.ImageUpload, 0, len(files))
		for i, fh := range files {
			f, err := fh.Open()
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
				return
			}
			defer f.Close()

			description := ""
			if i < len(descriptions) {
				description = descriptions[i]
			}

			uploads = append(uploads, services.ImageUpload{
				Name:        fh.Filename,
				Description: description,
				Reader:      f,
			})
		}

		checkup, err := svc.AttachImages(r.Context(), claims.UserID, checkupID, uploads)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTooManyImages):
				writeMessage(w, http.StatusBadRequest, "Too many images in one upload")
			case errors.Is(err, storage.ErrFileTooLarge):
				writeMessage(w, http.StatusBadRequest, "Image is too large")
			default:
				writeCheckupError(w, err)
			}
			return
		}
		writeJSON(w, http.StatusOK, checkup)
	}
}
