package service

import (
	"context"
	"errors"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type UserService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
}

type UserServiceImpl struct {
	repository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) UserService {
	return &UserServiceImpl{repository: userRepository}
}

func (s *UserServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		// a valid token for a deleted account
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}
