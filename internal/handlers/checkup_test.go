package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashokchittari/dentoCare/internal/models"
	"github.com/Ashokchittari/dentoCare/internal/services"
)

func TestCreateCheckupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCheckupRequester(ctrl)
	handler := NewCreateCheckupHandler(mockSvc)

	patientID := uuid.New()
	dentistID := uuid.New()
	created := &models.CheckupDB{
		CheckupID: uuid.New(),
		PatientID: patientID,
		DentistID: dentistID,
		Status:    models.StatusPending,
	}

	tests := []struct {
		name            string
		inputBody       interface{}
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: CreateCheckupRequest{DentistID: dentistID.String()},
			mockSetup: func() {
				mockSvc.EXPECT().
					Request(gomock.Any(), patientID, dentistID).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:            "invalid JSON",
			inputBody:       "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "missing dentist id",
			inputBody:       CreateCheckupRequest{},
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Dentist id is required",
		},
		{
			name:      "dentist not found",
			inputBody: CreateCheckupRequest{DentistID: dentistID.String()},
			mockSetup: func() {
				mockSvc.EXPECT().
					Request(gomock.Any(), patientID, dentistID).
					Return(nil, services.ErrDentistNotFound)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Dentist not found",
		},
		{
			name:      "internal error",
			inputBody: CreateCheckupRequest{DentistID: dentistID.String()},
			mockSetup: func() {
				mockSvc.EXPECT().
					Request(gomock.Any(), patientID, dentistID).
					Return(nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body bytes.Buffer
			if s, ok := tt.inputBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.inputBody))
			}

			req := authenticated(httptest.NewRequest(http.MethodPost, "/api/checkups", &body), patientID, models.RolePatient)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedMessage != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}

	t.Run("no claims in context", func(t *testing.T) {
		body := bytes.NewBufferString(`{"dentistId":"` + dentistID.String() + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/checkups", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListCheckupHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCheckupLister(ctrl)

	callerID := uuid.New()
	checkups := []models.CheckupDB{
		{CheckupID: uuid.New(), PatientID: callerID, DentistID: uuid.New(), Status: models.StatusPending},
	}

	t.Run("as patient", func(t *testing.T) {
		mockSvc.EXPECT().
			ListForPatient(gomock.Any(), callerID).
			Return(checkups, nil)

		handler := NewListPatientCheckupsHandler(mockSvc)
		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/checkups/patient", nil), callerID, models.RolePatient)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []models.CheckupDB
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("as dentist", func(t *testing.T) {
		mockSvc.EXPECT().
			ListForDentist(gomock.Any(), callerID).
			Return([]models.CheckupDB{}, nil)

		handler := NewListDentistCheckupsHandler(mockSvc)
		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/checkups/dentist", nil), callerID, models.RoleDentist)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []models.CheckupDB
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().
			ListForPatient(gomock.Any(), callerID).
			Return(nil, errors.New("database error"))

		handler := NewListPatientCheckupsHandler(mockSvc)
		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/checkups/patient", nil), callerID, models.RolePatient)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetCheckupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCheckupGetter(ctrl)

	router := chi.NewRouter()
	router.Get("/api/checkups/{id}", NewGetCheckupHandler(mockSvc))

	callerID := uuid.New()
	checkupID := uuid.New()
	checkup := &models.CheckupDB{CheckupID: checkupID, PatientID: callerID, DentistID: uuid.New()}

	tests := []struct {
		name            string
		path            string
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			path: "/api/checkups/" + checkupID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), callerID, checkupID).
					Return(checkup, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "malformed id answers not found",
			path:            "/api/checkups/not-a-uuid",
			mockSetup:       func() {},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Checkup not found",
		},
		{
			name: "unknown checkup",
			path: "/api/checkups/" + checkupID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), callerID, checkupID).
					Return(nil, services.ErrCheckupNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Checkup not found",
		},
		{
			name: "not a party to the checkup",
			path: "/api/checkups/" + checkupID.String(),
			mockSetup: func() {
				mockSvc.EXPECT().
					Get(gomock.Any(), callerID, checkupID).
					Return(nil, services.ErrNotAllowed)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Not authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := authenticated(httptest.NewRequest(http.MethodGet, tt.path, nil), callerID, models.RolePatient)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedMessage != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestUpdateCheckupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCheckupUpdater(ctrl)

	router := chi.NewRouter()
	router.Put("/api/checkups/{id}", NewUpdateCheckupHandler(mockSvc))

	dentistID := uuid.New()
	checkupID := uuid.New()
	updated := &models.CheckupDB{
		CheckupID: checkupID,
		PatientID: uuid.New(),
		DentistID: dentistID,
		Status:    models.StatusCompleted,
		Notes:     "done",
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), dentistID, checkupID, models.StatusCompleted, "done").
			Return(updated, nil)

		body := bytes.NewBufferString(`{"status":"completed","notes":"done"}`)
		req := authenticated(httptest.NewRequest(http.MethodPut, "/api/checkups/"+checkupID.String(), body), dentistID, models.RoleDentist)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.CheckupDB
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, models.StatusCompleted, resp.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockSvc.EXPECT().
			Update(gomock.Any(), dentistID, checkupID, "cancelled", "").
			Return(nil, services.ErrInvalidStatus)

		body := bytes.NewBufferString(`{"status":"cancelled"}`)
		req := authenticated(httptest.NewRequest(http.MethodPut, "/api/checkups/"+checkupID.String(), body), dentistID, models.RoleDentist)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Status must be pending or completed", resp.Message)
	})

	t.Run("patient is forbidden", func(t *testing.T) {
		patientID := uuid.New()
		mockSvc.EXPECT().
			Update(gomock.Any(), patientID, checkupID, models.StatusCompleted, "").
			Return(nil, services.ErrNotAllowed)

		body := bytes.NewBufferString(`{"status":"completed"}`)
		req := authenticated(httptest.NewRequest(http.MethodPut, "/api/checkups/"+checkupID.String(), body), patientID, models.RolePatient)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestExportCheckupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReportExporter(ctrl)

	router := chi.NewRouter()
	router.Get("/api/checkups/{id}/export", NewExportCheckupHandler(mockSvc))

	callerID := uuid.New()
	checkupID := uuid.New()
	filename := "checkup-" + checkupID.String() + ".pdf"

	t.Run("streams the PDF attachment", func(t *testing.T) {
		mockSvc.EXPECT().
			Export(gomock.Any(), callerID, checkupID).
			Return([]byte("%PDF-1.3"), filename, nil)

		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/checkups/"+checkupID.String()+"/export", nil), callerID, models.RolePatient)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename="+filename, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		mockSvc.EXPECT().
			Export(gomock.Any(), callerID, checkupID).
			Return(nil, "", services.ErrNotAllowed)

		req := authenticated(httptest.NewRequest(http.MethodGet, "/api/checkups/"+checkupID.String()+"/export", nil), callerID, models.RolePatient)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
