package repository_test

import (
	"context"
	"testing"

	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTicket(t *testing.T, repo repository.TicketRepository, scheduleID uuid.UUID, name string, quantity int) *model.Ticket {
	t.Helper()
	var created *model.Ticket
	err := withTx(t, testDB, func(tx pgx.Tx) error {
		var err error
		created, err = repo.Create(context.Background(), tx, &model.Ticket{
			ScheduleID: scheduleID,
			Name:       name,
			Price:      10,
			Quantity:   quantity,
			Available:  quantity,
			Status:     model.TicketStatusDraft,
		})
		return err
	})
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
	return created
}

func TestTicketRepository_Create(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewTicketRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 10, 120)
	schedule := createTestSchedule(t, pool, f, evening)

	created := createTestTicket(t, repo, schedule.ID, "Standard", 3)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.TicketStatusDraft, created.Status)
	assert.Equal(t, 3, created.Available)
	assert.NotZero(t, created.CreatedAt)
}

func TestTicketRepository_CountBySchedule(t *testing.T) {
	pool := setupTestWithTruncate(t)
	repo := repository.NewTicketRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 10, 120)
	schedule := createTestSchedule(t, pool, f, evening)

	createTestTicket(t, repo, schedule.ID, "Standard", 3)
	createTestTicket(t, repo, schedule.ID, "VIP", 2)

	err := withTx(t, pool, func(tx pgx.Tx) error {
		count, err := repo.CountBySchedule(context.Background(), tx, schedule.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		total, err := repo.SumQuantityBySchedule(context.Background(), tx, schedule.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		return nil
	})
	require.NoError(t, err)
}

func TestTicketRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewTicketRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 10, 120)
		ticket := createTestTicket(t, repo, createTestSchedule(t, pool, f, evening).ID, "Standard", 3)

		quantity := 5
		updated, err := repo.Update(ctx, ticket.ID, model.TicketPatch{Quantity: &quantity})

		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)
		assert.Equal(t, 5, updated.Available)
	})

	t.Run("Failed - TicketNotEditable", func(t *testing.T) {
		pool := setupTestWithTruncate(t)
		repo := repository.NewTicketRepository(pool)
		f := createFixture(t, pool, "owner@example.com", 10, 120)
		ticket := createTestTicket(t, repo, createTestSchedule(t, pool, f, evening).ID, "Standard", 3)

		_, err := repo.UpdateStatus(ctx, ticket.ID, model.TicketStatusActive)
		require.NoError(t, err)

		name := "Renamed"
		_, err = repo.Update(ctx, ticket.ID, model.TicketPatch{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrTicketNotEditable)
	})
}

func TestTicketRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewTicketRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 10, 120)
	schedule := createTestSchedule(t, pool, f, evening)
	ticket := createTestTicket(t, repo, schedule.ID, "Standard", 3)

	active, err := repo.UpdateStatus(ctx, ticket.ID, model.TicketStatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.TicketStatusActive, active.Status)

	listing, err := repo.ListActiveBySchedule(ctx, schedule.ID)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "Standard", listing[0].Name)

	_, err = repo.UpdateStatus(ctx, ticket.ID, model.TicketStatusDraft)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)

	err = repo.Delete(ctx, ticket.ID)
	assert.ErrorIs(t, err, apperrors.ErrTicketNotDeletable)
}

func TestTicketRepository_FindUserOwnedTicket(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewTicketRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 10, 120)
	ticket := createTestTicket(t, repo, createTestSchedule(t, pool, f, evening).ID, "Standard", 3)

	found, err := repo.FindUserOwnedTicket(ctx, f.user.ID, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)

	_, err = repo.FindUserOwnedTicket(ctx, uuid.New(), ticket.ID)
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}

func TestScheduleRepository_DeleteCascadesTickets(t *testing.T) {
	ctx := context.Background()
	pool := setupTestWithTruncate(t)
	repo := repository.NewTicketRepository(pool)
	f := createFixture(t, pool, "owner@example.com", 10, 120)
	schedule := createTestSchedule(t, pool, f, evening)
	ticket := createTestTicket(t, repo, schedule.ID, "Standard", 3)

	require.NoError(t, repository.NewScheduleRepository(pool).Delete(ctx, schedule.ID))

	_, err := repo.FindUserOwnedTicket(ctx, f.user.ID, ticket.ID)
	assert.ErrorIs(t, err, apperrors.ErrTicketNotFound)
}
