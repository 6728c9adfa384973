package service

import (
	"context"
	"errors"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type TheatreService interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateTheatreRequest) (*model.Theatre, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Theatre, error)
	FindUserTheatres(ctx context.Context, userID uuid.UUID) ([]*model.Theatre, error)
	Update(ctx context.Context, userID, id uuid.UUID, params model.UpdateTheatreParams) (*model.Theatre, error)
	Remove(ctx context.Context, userID, id uuid.UUID) error
}

type TheatreServiceImpl struct {
	repository repository.TheatreRepository
	users      repository.UserRepository
}

func NewTheatreService(theatreRepository repository.TheatreRepository, userRepository repository.UserRepository) TheatreService {
	return &TheatreServiceImpl{repository: theatreRepository, users: userRepository}
}

func (s *TheatreServiceImpl) Create(ctx context.Context, userID uuid.UUID, req model.CreateTheatreRequest) (*model.Theatre, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	return s.repository.Create(ctx, &model.Theatre{
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
	})
}

func (s *TheatreServiceImpl) FindOne(ctx context.Context, id uuid.UUID) (*model.Theatre, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *TheatreServiceImpl) FindUserTheatres(ctx context.Context, userID uuid.UUID) ([]*model.Theatre, error) {
	return s.repository.ListByUser(ctx, userID)
}

func (s *TheatreServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, params model.UpdateTheatreParams) (*model.Theatre, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}
	theatre, err := s.repository.FindUserTheatre(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.repository.Update(ctx, theatre.ID, params)
}

func (s *TheatreServiceImpl) Remove(ctx context.Context, userID, id uuid.UUID) error {
	theatre, err := s.repository.FindUserTheatre(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repository.Delete(ctx, theatre.ID)
}
