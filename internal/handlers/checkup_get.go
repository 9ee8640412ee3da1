package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
)

// CheckupGetter defines the interface for reading one checkup.
type CheckupGetter interface {
	Get(ctx context.Context, callerID, checkupID uuid.UUID) (*models.CheckupDB, error)
}

// NewGetCheckupHandler returns an HTTP handler for one checkup by id.
// @Summary Get a checkup
// @Description Returns one checkup with both party profiles populated
// @Tags checkups
// @Produce json
// @Param id path string true "Checkup id"
// @Success 200 {object} models.CheckupDB "Checkup"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Checkup not found"
// @Router /api/checkups/{id} [get]
// @Security CookieAuth
func NewGetCheckupHandler(svc CheckupGetter) http.HandlerFunc {
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

		checkup, err := svc.Get(r.Context(), claims.UserID, checkupID)
		if err != nil {
			writeCheckupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, checkup)
	}
}

// writeCheckupError maps the checkup service errors shared by the id-scoped
// endpoints to their HTTP responses.
func writeCheckupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCheckupNotFound):
		writeMessage(w, http.StatusNotFound, "Checkup not found")
	case errors.Is(err, services.ErrNotAllowed):
		writeMessage(w, http.StatusForbidden, "Not authorized")
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
	}
}
