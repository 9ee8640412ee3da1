package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/middlewares"
)

// ReportExporter defines the interface for rendering a checkup report.
type ReportExporter interface {
	Export(ctx context.Context, callerID, checkupID uuid.UUID) ([]byte, string, error)
}

// NewExportCheckupHandler returns an HTTP handler streaming the PDF report.
// @Summary Export checkup report
// @Description Renders the checkup as a PDF attachment
// @Tags checkups
// @Produce application/pdf
// @Param id path string true "Checkup id"
// @Success 200 {file} binary "PDF report"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Checkup not found"
// @Router /api/checkups/{id}/export [get]
// @Security CookieAuth
func NewExportCheckupHandler(svc ReportExporter) http.HandlerFunc {
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

		data, filename, err := svc.Export(r.Context(), claims.UserID, checkupID)
		if err != nil {
			writeCheckupError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
