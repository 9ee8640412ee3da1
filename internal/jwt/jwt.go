package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the HTTP cookie carrying the signed credential.
const CookieName = "token"

// Classified verification failures.
var (
	ErrTokenMissing = errors.New("no token present")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the verified identity extracted from a token.
type Claims struct {
	UserID    uuid.UUID // Subject id
	Role      string    // "patient" or "dentist"
	ExpiresAt time.Time // Expiry timestamp
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token for a given user id and role.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     time.Now().Add(j.Exp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns the verified claims.
// Failures are classified: ErrTokenExpired for a past expiry (caught either
// by the parser or by the explicit timestamp comparison below),
// ErrTokenInvalid for a bad signature or malformed token. Any other error
// is returned as-is.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrTokenInvalid
		default:
			return nil, err
		}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	userIDStr, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}
	expiresAt := time.Unix(int64(exp), 0)
	if expiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	return &Claims{
		UserID:    userID,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}

// GetTokenFromRequest extracts the token string from the "token" cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrTokenMissing
	}
	return cookie.Value, nil
}
