package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
)

// CheckupRequester defines the interface for creating a checkup request.
type CheckupRequester interface {
	Request(ctx context.Context, callerID, dentistID uuid.UUID) (*models.CheckupDB, error)
}

// CreateCheckupRequest represents the JSON body for requesting a checkup
// swagger:model CreateCheckupRequest
type CreateCheckupRequest struct {
	// Dentist id
	// required: true
	// default: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	DentistID string `json:"dentistId"`
}

// NewCreateCheckupHandler returns an HTTP handler for requesting a checkup.
// The caller becomes the patient of the new record.
// @Summary Request a checkup
// @Description Creates a pending checkup naming the caller as patient
// @Tags checkups
// @Accept json
// @Produce json
// @Param createCheckupRequest body handlers.CreateCheckupRequest true "Checkup request"
// @Success 201 {object} models.CheckupDB "Created checkup"
// @Failure 400 {object} handlers.ErrorResponse "Dentist not found / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/checkups [post]
// @Security CookieAuth
func NewCreateCheckupHandler(svc CheckupRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		var req CreateCheckupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		dentistID, err := uuid.Parse(req.DentistID)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Dentist id is required")
			return
		}

		checkup, err := svc.Request(r.Context(), claims.UserID, dentistID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDentistNotFound):
				writeMessage(w, http.StatusBadRequest, "Dentist not found")
			case errors.Is(err, services.ErrNotAllowed):
				writeMessage(w, http.StatusForbidden, "Not authorized")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, checkup)
	}
}
