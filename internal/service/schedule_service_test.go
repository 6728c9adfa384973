package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemocks "theatre-booking/internal/cache/mocks"
	"theatre-booking/internal/model"
	repomocks "theatre-booking/internal/repository/mocks"
	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleServiceDeps struct {
	schedules   *repomocks.MockScheduleRepository
	auditoriums *repomocks.MockAuditoriumRepository
	shows       *repomocks.MockShowRepository
	cache       *cachemocks.MockActiveTicketCache
}

func setupScheduleService(t *testing.T) (service.ScheduleService, scheduleServiceDeps) {
	deps := scheduleServiceDeps{
		schedules:   repomocks.NewMockScheduleRepository(t),
		auditoriums: repomocks.NewMockAuditoriumRepository(t),
		shows:       repomocks.NewMockShowRepository(t),
		cache:       cachemocks.NewMockActiveTicketCache(t),
	}
	return service.NewScheduleService(deps.schedules, deps.auditoriums, deps.shows, deps.cache), deps
}

func TestScheduleService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)
	auditorium := &model.Auditorium{ID: uuid.New()}
	show := &model.Show{ID: uuid.New(), Duration: 120}
	req := model.CreateScheduleRequest{AuditoriumID: auditorium.ID, ShowID: show.ID, StartTime: start}
	window := model.ScheduleWindow{Start: start, End: start.Add(2 * time.Hour)}

	t.Run("Success", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		scheduleID := uuid.New()

		deps.auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(auditorium, nil).Once()
		deps.shows.EXPECT().FindOwnedShow(mock.Anything, userID, show.ID).Return(show, nil).Once()
		deps.schedules.EXPECT().CountOverlapping(mock.Anything, auditorium.ID, window, (*uuid.UUID)(nil)).Return(0, nil).Once()
		deps.schedules.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *model.Schedule) bool {
			return s.StartTime.Equal(start) && s.EndTime.Equal(window.End) && s.ShowID == show.ID
		})).Return(&model.Schedule{ID: scheduleID}, nil).Once()

		summary, err := svc.Create(ctx, userID, req)

		require.NoError(t, err)
		assert.Equal(t, scheduleID, summary.ID)
	})

	t.Run("Failed - ScheduleConflict", func(t *testing.T) {
		svc, deps := setupScheduleService(t)

		deps.auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(auditorium, nil).Once()
		deps.shows.EXPECT().FindOwnedShow(mock.Anything, userID, show.ID).Return(show, nil).Once()
		deps.schedules.EXPECT().CountOverlapping(mock.Anything, auditorium.ID, window, (*uuid.UUID)(nil)).Return(1, nil).Once()

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
	})

	t.Run("Failed - constraint rejects concurrent insert", func(t *testing.T) {
		svc, deps := setupScheduleService(t)

		deps.auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(auditorium, nil).Once()
		deps.shows.EXPECT().FindOwnedShow(mock.Anything, userID, show.ID).Return(show, nil).Once()
		deps.schedules.EXPECT().CountOverlapping(mock.Anything, auditorium.ID, window, (*uuid.UUID)(nil)).Return(0, nil).Once()
		deps.schedules.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, apperrors.ErrScheduleConflict).Once()

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
	})

	t.Run("Failed - AuditoriumNotFound", func(t *testing.T) {
		svc, deps := setupScheduleService(t)

		deps.auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(nil, apperrors.ErrAuditoriumNotFound).Once()

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, apperrors.ErrAuditoriumNotFound)
	})

	t.Run("Failed - ShowNotFound", func(t *testing.T) {
		svc, deps := setupScheduleService(t)

		deps.auditoriums.EXPECT().FindUserAuditorium(mock.Anything, userID, auditorium.ID).Return(auditorium, nil).Once()
		deps.shows.EXPECT().FindOwnedShow(mock.Anything, userID, show.ID).Return(nil, apperrors.ErrShowNotFound).Once()

		_, err := svc.Create(ctx, userID, req)
		assert.ErrorIs(t, err, apperrors.ErrShowNotFound)
	})
}

func TestScheduleService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	t.Run("Success - end time follows show duration", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		schedule := scheduleWithSeats(1)
		want := model.ScheduleWindow{Start: start, End: start.Add(90 * time.Minute)}

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.schedules.EXPECT().CountOverlapping(mock.Anything, schedule.AuditoriumID, want, &schedule.ID).Return(0, nil).Once()
		deps.schedules.EXPECT().UpdateWindow(mock.Anything, schedule.ID, want).Return(&model.Schedule{ID: schedule.ID}, nil).Once()

		summary, err := svc.Update(ctx, userID, schedule.ID, model.UpdateScheduleRequest{StartTime: start})

		require.NoError(t, err)
		assert.Equal(t, schedule.ID, summary.ID)
	})

	t.Run("Failed - ScheduleConflict", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		schedule := scheduleWithSeats(1)

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.schedules.EXPECT().CountOverlapping(mock.Anything, schedule.AuditoriumID, mock.Anything, &schedule.ID).Return(1, nil).Once()

		_, err := svc.Update(ctx, userID, schedule.ID, model.UpdateScheduleRequest{StartTime: start})
		assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
	})

	t.Run("Failed - ScheduleNotFound", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		id := uuid.New()

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, id).Return(nil, apperrors.ErrScheduleNotFound).Once()

		_, err := svc.Update(ctx, userID, id, model.UpdateScheduleRequest{StartTime: start})
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})
}

func TestScheduleService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - drops the public ticket listing", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		schedule := scheduleWithSeats(1)

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.schedules.EXPECT().Delete(mock.Anything, schedule.ID).Return(nil).Once()
		deps.cache.EXPECT().Invalidate(mock.Anything, schedule.ID).Return(nil).Once()

		assert.NoError(t, svc.Remove(ctx, userID, schedule.ID))
	})

	t.Run("Success - cache failure does not fail the delete", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		schedule := scheduleWithSeats(1)

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.schedules.EXPECT().Delete(mock.Anything, schedule.ID).Return(nil).Once()
		deps.cache.EXPECT().Invalidate(mock.Anything, schedule.ID).Return(errors.New("redis down")).Once()

		assert.NoError(t, svc.Remove(ctx, userID, schedule.ID))
	})

	t.Run("Failed - ScheduleNotFound", func(t *testing.T) {
		svc, deps := setupScheduleService(t)
		id := uuid.New()

		deps.schedules.EXPECT().FindOwnedSchedule(mock.Anything, userID, id).Return(nil, apperrors.ErrScheduleNotFound).Once()

		assert.ErrorIs(t, svc.Remove(ctx, userID, id), apperrors.ErrScheduleNotFound)
	})
}
