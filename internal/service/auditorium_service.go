package service

import (
	"context"
	"errors"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
)

type AuditoriumService interface {
	Create(ctx context.Context, userID, theatreID uuid.UUID, req model.CreateAuditoriumRequest) (*model.Auditorium, error)
	FindOne(ctx context.Context, theatreID, id uuid.UUID) (*model.Auditorium, error)
	FindTheatreAuditoriums(ctx context.Context, theatreID uuid.UUID) ([]model.AuditoriumSummary, error)
	Update(ctx context.Context, userID, theatreID, id uuid.UUID, params model.UpdateAuditoriumParams) (*model.Auditorium, error)
	Remove(ctx context.Context, userID, theatreID, id uuid.UUID) error
}

type AuditoriumServiceImpl struct {
	repository repository.AuditoriumRepository
	theatres   repository.TheatreRepository
}

func NewAuditoriumService(auditoriumRepository repository.AuditoriumRepository, theatreRepository repository.TheatreRepository) AuditoriumService {
	return &AuditoriumServiceImpl{
		repository: auditoriumRepository,
		theatres:   theatreRepository,
	}
}

func (s *AuditoriumServiceImpl) Create(ctx context.Context, userID, theatreID uuid.UUID, req model.CreateAuditoriumRequest) (*model.Auditorium, error) {
	theatre, err := s.theatres.FindUserTheatre(ctx, userID, theatreID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTheatreNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if err := req.SeatMap.Validate(); err != nil {
		return nil, err
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = req.SeatMap.SeatCount()
	}

	return s.repository.Create(ctx, &model.Auditorium{
		TheatreID: theatre.ID,
		Name:      req.Name,
		Capacity:  capacity,
		SeatMap:   req.SeatMap,
	})
}

func (s *AuditoriumServiceImpl) FindOne(ctx context.Context, theatreID, id uuid.UUID) (*model.Auditorium, error) {
	auditorium, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if auditorium.TheatreID != theatreID {
		return nil, apperrors.ErrAuditoriumNotFound
	}
	return auditorium, nil
}

func (s *AuditoriumServiceImpl) FindTheatreAuditoriums(ctx context.Context, theatreID uuid.UUID) ([]model.AuditoriumSummary, error) {
	if _, err := s.theatres.FindByID(ctx, theatreID); err != nil {
		return nil, err
	}
	return s.repository.ListByTheatre(ctx, theatreID)
}

func (s *AuditoriumServiceImpl) findOwned(ctx context.Context, userID, theatreID, id uuid.UUID) (*model.Auditorium, error) {
	auditorium, err := s.repository.FindUserAuditorium(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if auditorium.TheatreID != theatreID {
		return nil, apperrors.ErrAuditoriumNotFound
	}
	return auditorium, nil
}

func (s *AuditoriumServiceImpl) Update(ctx context.Context, userID, theatreID, id uuid.UUID, params model.UpdateAuditoriumParams) (*model.Auditorium, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	auditorium, err := s.findOwned(ctx, userID, theatreID, id)
	if err != nil {
		return nil, err
	}

	if params.SeatMap != nil {
		if err := params.SeatMap.Validate(); err != nil {
			return nil, err
		}
	}

	return s.repository.Update(ctx, auditorium.ID, params)
}

func (s *AuditoriumServiceImpl) Remove(ctx context.Context, userID, theatreID, id uuid.UUID) error {
	auditorium, err := s.findOwned(ctx, userID, theatreID, id)
	if err != nil {
		return err
	}
	return s.repository.Delete(ctx, auditorium.ID)
}
