package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ashokchittari/dentoCare/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	jwtSvc := jwt.New("test-secret", time.Minute)
	expiredSvc := jwt.New("test-secret", -time.Minute)
	otherSvc := jwt.New("other-secret", time.Minute)

	userID := uuid.New()

	validToken, err := jwtSvc.Generate(context.Background(), userID, "patient")
	assert.NoError(t, err)
	expiredToken, err := expiredSvc.Generate(context.Background(), userID, "patient")
	assert.NoError(t, err)
	foreignToken, err := otherSvc.Generate(context.Background(), userID, "patient")
	assert.NoError(t, err)

	tests := []struct {
		name            string
		cookie          *http.Cookie
		expectedCode    int
		expectedMessage string
		expectNext      bool
	}{
		{
			name:         "valid token passes claims downstream",
			cookie:       &http.Cookie{Name: jwt.CookieName, Value: validToken},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:            "missing token",
			cookie:          nil,
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "No token, authorization denied",
		},
		{
			name:            "expired token",
			cookie:          &http.Cookie{Name: jwt.CookieName, Value: expiredToken},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Token has expired",
		},
		{
			name:            "bad signature",
			cookie:          &http.Cookie{Name: jwt.CookieName, Value: foreignToken},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:            "malformed token",
			cookie:          &http.Cookie{Name: jwt.CookieName, Value: "not-a-token"},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				claims := GetClaimsFromContext(r.Context())
				assert.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, "patient", claims.Role)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/checkups/patient", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(jwtSvc)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			if tt.expectedMessage != "" {
				var resp authErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestGetClaimsFromContext_NotSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetClaimsFromContext(req.Context()))
}
