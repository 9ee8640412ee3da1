package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ashokchittari/dentoCare/internal/logger"
	"github.com/Ashokchittari/dentoCare/internal/models"
)

// UserService exposes the user directory operations.
type UserService struct {
	reader UserReader
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader) *UserService {
	return &UserService{reader: reader}
}

// ListDentists returns all registered dentists.
func (svc *UserService) ListDentists(ctx context.Context) ([]models.UserDB, error) {
	dentists, err := svc.reader.ListByRole(ctx, models.RoleDentist)
	if err != nil {
		logger.Log.Errorw("failed to list dentists", "err", err)
		return nil, err
	}
	return dentists, nil
}

// Me returns the caller's own user record.
func (svc *UserService) Me(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}
