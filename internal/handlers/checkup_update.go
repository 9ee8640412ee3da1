package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
)

// CheckupUpdater defines the interface for partial status/notes updates.
type CheckupUpdater interface {
	Update(ctx context.Context, callerID, checkupID uuid.UUID, status, notes string) (*models.CheckupDB, error)
}

// UpdateCheckupRequest represents the JSON body for a status/notes update.
// An omitted or empty field is left unchanged.
// swagger:model UpdateCheckupRequest
type UpdateCheckupRequest struct {
	// Status, one of pending or completed
	// default: completed
	Status string `json:"status"`

	// Notes
	// default: Two cavities found
	Notes string `json:"notes"`
}

// NewUpdateCheckupHandler returns an HTTP handler for status/notes updates.
// @Summary Update checkup status and notes
// @Description Applies only the provided fields; dentist only
// @Tags checkups
// @Accept json
// @Produce json
// @Param id path string true "Checkup id"
// @Param updateCheckupRequest body handlers.UpdateCheckupRequest true "Fields to update"
// @Success 200 {object} models.CheckupDB "Updated checkup"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Checkup not found"
// @Router /api/checkups/{id} [put]
// @Security CookieAuth
func NewUpdateCheckupHandler(svc CheckupUpdater) http.HandlerFunc {
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

		var req UpdateCheckupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		checkup, err := svc.Update(r.Context(), claims.UserID, checkupID, req.Status, req.Notes)
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				writeMessage(w, http.StatusBadRequest, "Status must be pending or completed")
				return
			}
			writeCheckupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, checkup)
	}
}
