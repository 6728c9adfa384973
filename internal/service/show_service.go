package service

import (
	"context"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type ShowService interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateShowRequest) (*model.Show, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Show, error)
	FindUserShows(ctx context.Context, userID uuid.UUID) ([]*model.Show, error)
	Update(ctx context.Context, userID, id uuid.UUID, params model.UpdateShowParams) (*model.Show, error)
	Remove(ctx context.Context, userID, id uuid.UUID) error
}

type ShowServiceImpl struct {
	repository repository.ShowRepository
}

func NewShowService(showRepository repository.ShowRepository) ShowService {
	return &ShowServiceImpl{repository: showRepository}
}

func (s *ShowServiceImpl) Create(ctx context.Context, userID uuid.UUID, req model.CreateShowRequest) (*model.Show, error) {
	if req.Duration < model.MinShowDuration || req.Duration > model.MaxShowDuration ||
		req.Rating < model.MinShowRating || req.Rating > model.MaxShowRating {
		return nil, apperrors.ErrInvalidInput
	}

	return s.repository.Create(ctx, &model.Show{
		UserID:      userID,
		Name:        req.Name,
		Duration:    req.Duration,
		ReleaseDate: req.ReleaseDate,
		Description: req.Description,
		Rating:      req.Rating,
	})
}

func (s *ShowServiceImpl) FindOne(ctx context.Context, id uuid.UUID) (*model.Show, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ShowServiceImpl) FindUserShows(ctx context.Context, userID uuid.UUID) ([]*model.Show, error) {
	return s.repository.ListByUser(ctx, userID)
}

func (s *ShowServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, params model.UpdateShowParams) (*model.Show, error) {
	if params.IsEmpty() || !params.Valid() {
		return nil, apperrors.ErrInvalidInput
	}
	show, err := s.repository.FindOwnedShow(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.repository.Update(ctx, show.ID, params)
}

func (s *ShowServiceImpl) Remove(ctx context.Context, userID, id uuid.UUID) error {
	show, err := s.repository.FindOwnedShow(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repository.Delete(ctx, show.ID)
}
