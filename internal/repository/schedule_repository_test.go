package repository_test

import (
	"context"
	"testing"
	"time"

	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evening = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

func TestScheduleRepository_CountOverlapping(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewScheduleRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 10, 120)
		existing := createTestSchedule(t, pool, f, evening) // 18:00-20:00

		overlapping, err := repo.CountOverlapping(ctx, f.auditorium.ID, model.ComputeWindow(evening.Add(time.Hour), 60), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, overlapping)

		backToBack, err := repo.CountOverlapping(ctx, f.auditorium.ID, model.ComputeWindow(evening.Add(2*time.Hour), 60), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, backToBack)

		self, err := repo.CountOverlapping(ctx, f.auditorium.ID, existing.Window(), &existing.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, self)
	})
}

func TestScheduleRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - exclusion constraint", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewScheduleRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 10, 120)
		createTestSchedule(t, pool, f, evening)

		w := model.ComputeWindow(evening.Add(30*time.Minute), 120)
		_, err := repo.Create(ctx, &model.Schedule{
			AuditoriumID: f.auditorium.ID,
			ShowID:       f.show.ID,
			StartTime:    w.Start,
			EndTime:      w.End,
		})

		assert.ErrorIs(t, err, apperrors.ErrScheduleConflict)
	})
}

func TestScheduleRepository_FindOwnedSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewScheduleRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 4, 90)
		schedule := createTestSchedule(t, pool, f, evening)

		found, err := repo.FindOwnedSchedule(ctx, f.user.ID, schedule.ID)

		require.NoError(t, err)
		require.NotNil(t, found.Show)
		require.NotNil(t, found.Auditorium)
		assert.Equal(t, 90, found.Show.Duration)
		assert.Equal(t, 4, found.Auditorium.SeatMap.SeatCount())
	})

	t.Run("Failed - other user", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewScheduleRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 4, 90)
		schedule := createTestSchedule(t, pool, f, evening)

		_, err := repo.FindOwnedSchedule(ctx, uuid.New(), schedule.ID)
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})
}

func TestAuditoriumRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed - AuditoriumInUse", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		f := createFixture(t, pool, "owner@example.com", 4, 90)
		createTestSchedule(t, pool, f, evening)

		err := repository.NewAuditoriumRepository(pool).Delete(ctx, f.auditorium.ID)
		assert.ErrorIs(t, err, apperrors.ErrAuditoriumInUse)
	})
}

func TestScheduleRepository_Listings(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewScheduleRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 4, 60)

	late := createTestSchedule(t, pool, f, evening.Add(3*time.Hour))
	early := createTestSchedule(t, pool, f, evening)

	t.Run("ByAuditorium", func(t *testing.T) {
		schedules, err := repo.ListByAuditorium(ctx, f.theatre.ID, f.auditorium.ID)
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, early.ID, schedules[0].ID)
		assert.Equal(t, late.ID, schedules[1].ID)
		assert.Equal(t, "Hamlet", schedules[0].Show.Name)
		assert.Equal(t, 60, schedules[0].Show.Duration)
	})

	t.Run("ByAuditorium - wrong theatre", func(t *testing.T) {
		schedules, err := repo.ListByAuditorium(ctx, uuid.New(), f.auditorium.ID)
		require.NoError(t, err)
		assert.Empty(t, schedules)
	})

	t.Run("ByShow", func(t *testing.T) {
		schedules, err := repo.ListByShow(ctx, f.show.ID)
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, early.ID, schedules[0].ID)
		assert.Equal(t, "Main", schedules[0].Auditorium.Name)
		assert.Equal(t, "Globe", schedules[0].Auditorium.Theatre.Name)
	})
}
