package service

import (
	"context"
	"theatre-booking/internal/cache"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"
	"theatre-booking/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditoriumFinder resolves an auditorium through its theatre's owner.
type AuditoriumFinder interface {
	FindUserAuditorium(ctx context.Context, userID, auditoriumID uuid.UUID) (*model.Auditorium, error)
}

// ShowFinder resolves a show owned by the user.
type ShowFinder interface {
	FindOwnedShow(ctx context.Context, userID, showID uuid.UUID) (*model.Show, error)
}

type ScheduleService interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateScheduleRequest) (*model.ScheduleSummary, error)
	FindOne(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	// Update shifts the start time; the end time is recomputed from the show.
	Update(ctx context.Context, userID, id uuid.UUID, req model.UpdateScheduleRequest) (*model.ScheduleSummary, error)
	Remove(ctx context.Context, userID, id uuid.UUID) error
	FindAuditoriumSchedules(ctx context.Context, theatreID, auditoriumID uuid.UUID) ([]model.AuditoriumSchedule, error)
	FindShowSchedules(ctx context.Context, showID uuid.UUID) ([]model.ShowSchedule, error)
	// HasConflict reports whether w overlaps another schedule of the auditorium.
	HasConflict(ctx context.Context, auditoriumID uuid.UUID, w model.ScheduleWindow, excludeID *uuid.UUID) (bool, error)
}

type ScheduleServiceImpl struct {
	repository  repository.ScheduleRepository
	auditoriums AuditoriumFinder
	shows       ShowFinder
	tickets     cache.ActiveTicketCache
}

func NewScheduleService(
	scheduleRepository repository.ScheduleRepository,
	auditoriums AuditoriumFinder,
	shows ShowFinder,
	tickets cache.ActiveTicketCache,
) ScheduleService {
	return &ScheduleServiceImpl{
		repository:  scheduleRepository,
		auditoriums: auditoriums,
		shows:       shows,
		tickets:     tickets,
	}
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, userID uuid.UUID, req model.CreateScheduleRequest) (*model.ScheduleSummary, error) {
	auditorium, err := s.auditoriums.FindUserAuditorium(ctx, userID, req.AuditoriumID)
	if err != nil {
		return nil, err
	}

	show, err := s.shows.FindOwnedShow(ctx, userID, req.ShowID)
	if err != nil {
		return nil, err
	}

	window := model.ComputeWindow(req.StartTime, show.Duration)

	conflict, err := s.HasConflict(ctx, auditorium.ID, window, nil)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.ErrScheduleConflict
	}

	// the exclusion constraint still rejects a concurrent overlapping insert
	created, err := s.repository.Create(ctx, &model.Schedule{
		AuditoriumID: auditorium.ID,
		ShowID:       show.ID,
		StartTime:    window.Start,
		EndTime:      window.End,
	})
	if err != nil {
		return nil, err
	}

	return &model.ScheduleSummary{ID: created.ID}, nil
}

func (s *ScheduleServiceImpl) FindOne(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req model.UpdateScheduleRequest) (*model.ScheduleSummary, error) {
	schedule, err := s.repository.FindOwnedSchedule(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	window := model.ComputeWindow(req.StartTime, schedule.Show.Duration)

	conflict, err := s.HasConflict(ctx, schedule.AuditoriumID, window, &schedule.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.ErrScheduleConflict
	}

	updated, err := s.repository.UpdateWindow(ctx, schedule.ID, window)
	if err != nil {
		return nil, err
	}

	return &model.ScheduleSummary{ID: updated.ID}, nil
}

func (s *ScheduleServiceImpl) Remove(ctx context.Context, userID, id uuid.UUID) error {
	schedule, err := s.repository.FindOwnedSchedule(ctx, userID, id)
	if err != nil {
		return err
	}
	// tickets go with the schedule (ON DELETE CASCADE)
	if err := s.repository.Delete(ctx, schedule.ID); err != nil {
		return err
	}

	if err := s.tickets.Invalidate(ctx, schedule.ID); err != nil {
		logger.WithComponent("service").Warn("active ticket cache invalidation failed",
			zap.String("schedule_id", schedule.ID.String()), zap.Error(err))
	}
	return nil
}

func (s *ScheduleServiceImpl) FindAuditoriumSchedules(ctx context.Context, theatreID, auditoriumID uuid.UUID) ([]model.AuditoriumSchedule, error) {
	return s.repository.ListByAuditorium(ctx, theatreID, auditoriumID)
}

func (s *ScheduleServiceImpl) FindShowSchedules(ctx context.Context, showID uuid.UUID) ([]model.ShowSchedule, error) {
	return s.repository.ListByShow(ctx, showID)
}

func (s *ScheduleServiceImpl) HasConflict(ctx context.Context, auditoriumID uuid.UUID, w model.ScheduleWindow, excludeID *uuid.UUID) (bool, error) {
	count, err := s.repository.CountOverlapping(ctx, auditoriumID, w, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
