package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/middlewares"
	"github.com/Ashokchittari/dentoCare/internal/models"
)

// CheckupLister defines the listing operations. Which one runs is decided by
// the endpoint the caller invoked, not by the caller's role.
type CheckupLister interface {
	ListForPatient(ctx context.Context, callerID uuid.UUID) ([]models.CheckupDB, error)
	ListForDentist(ctx context.Context, callerID uuid.UUID) ([]models.CheckupDB, error)
}

// NewListPatientCheckupsHandler returns the caller's checkups as patient.
// @Summary List checkups as patient
// @Description Returns checkups where the caller is the patient, dentist profiles populated
// @Tags checkups
// @Produce json
// @Success 200 {array} models.CheckupDB "Checkups"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/checkups/patient [get]
// @Security CookieAuth
func NewListPatientCheckupsHandler(svc CheckupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		checkups, err := svc.ListForPatient(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, checkups)
	}
}

// NewListDentistCheckupsHandler returns the caller's checkups as dentist.
// @Summary List checkups as dentist
// @Description Returns checkups where the caller is the dentist, patient profiles populated
// @Tags checkups
// @Produce json
// @Success 200 {array} models.CheckupDB "Checkups"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /api/checkups/dentist [get]
// @Security CookieAuth
func NewListDentistCheckupsHandler(svc CheckupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		checkups, err := svc.ListForDentist(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
			return
		}
		writeJSON(w, http.StatusOK, checkups)
	}
}
