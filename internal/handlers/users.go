package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
)

// DentistLister defines the interface for listing registered dentists.
type DentistLister interface {
	ListDentists(ctx context.Context) ([]models.UserDB, error)
}

// ProfileGetter defines the interface for fetching the caller's own record.
type ProfileGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewListDentistsHandler returns an HTTP handler listing all dentists.
// @Summary List dentists
// @Description Returns all registered dentists for checkup requests
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Dentists"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/users/dentists [get]
// @Security CookieAuth
func NewListDentistsHandler(svc DentistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dentists, err := svc.ListDentists(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, dentists)
	}
}

// NewMeHandler returns an HTTP handler for the caller's own profile.
// @Summary Current user
// @Description Returns the authenticated caller's user record
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/me [get]
// @Security CookieAuth
func NewMeHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeMessage(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
