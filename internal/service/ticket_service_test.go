package service_test

import (
	"context"
	"errors"
	"testing"

	"theatre-booking/config"
	cachemocks "theatre-booking/internal/cache/mocks"
	"theatre-booking/internal/model"
	repomocks "theatre-booking/internal/repository/mocks"
	"theatre-booking/internal/service"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ticketServiceDeps struct {
	tx        *inlineTransactor
	tickets   *repomocks.MockTicketRepository
	schedules *repomocks.MockScheduleRepository
	cache     *cachemocks.MockActiveTicketCache
}

func setupTicketService(t *testing.T, accounting model.CapacityAccounting) (service.TicketService, ticketServiceDeps) {
	deps := ticketServiceDeps{
		tx:        &inlineTransactor{},
		tickets:   repomocks.NewMockTicketRepository(t),
		schedules: repomocks.NewMockScheduleRepository(t),
		cache:     cachemocks.NewMockActiveTicketCache(t),
	}
	svc := service.NewTicketService(deps.tx, deps.tickets, deps.schedules, deps.cache, accounting)
	return svc, deps
}

func TestTicketService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)
		schedule := scheduleWithSeats(3)
		ticketID := uuid.New()

		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.tickets.EXPECT().SumQuantityBySchedule(mock.Anything, mock.Anything, schedule.ID).Return(1, nil).Once()
		deps.tickets.EXPECT().Create(mock.Anything, mock.Anything, mock.MatchedBy(func(ticket *model.Ticket) bool {
			return ticket.Status == model.TicketStatusDraft &&
				ticket.Quantity == 2 &&
				ticket.Available == 2 &&
				ticket.ScheduleID == schedule.ID
		})).Return(&model.Ticket{ID: ticketID}, nil).Once()

		id, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "Standard", Price: 10, Quantity: 2})

		require.NoError(t, err)
		assert.Equal(t, ticketID, id)
		assert.Equal(t, 1, deps.tx.calls)
	})

	t.Run("Failed - second ticket on a full two-seat auditorium", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.ParseCapacityAccounting(config.LoadTestConfig().Booking.CapacityAccounting))
		schedule := scheduleWithSeats(2)

		// the repository sees exactly what the service created so far
		var created []*model.Ticket
		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, schedule.ID).Return(schedule, nil).Times(2)
		deps.tickets.EXPECT().SumQuantityBySchedule(mock.Anything, mock.Anything, schedule.ID).
			RunAndReturn(func(context.Context, pgx.Tx, uuid.UUID) (int, error) {
				sum := 0
				for _, ticket := range created {
					sum += ticket.Quantity
				}
				return sum, nil
			}).Times(2)
		deps.tickets.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
				ticket.ID = uuid.New()
				created = append(created, ticket)
				return ticket, nil
			}).Once()

		_, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "Full house", Quantity: 2})
		require.NoError(t, err)

		id, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "Late", Quantity: 1})

		assert.Equal(t, uuid.Nil, id)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
		assert.EqualError(t, err, "Cannot create 1 tickets. Only 0 more tickets can be created.")
		assert.Len(t, created, 1)
	})

	t.Run("Failed - CapacityExceeded by rows", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		schedule := scheduleWithSeats(2)

		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.tickets.EXPECT().CountBySchedule(mock.Anything, mock.Anything, schedule.ID).Return(2, nil).Once()

		id, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "Late", Quantity: 1})

		assert.Equal(t, uuid.Nil, id)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
		assert.EqualError(t, err, "Cannot create 1 tickets. Only 0 more tickets can be created.")
	})

	t.Run("Success - exactly fills remaining seats", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)
		schedule := scheduleWithSeats(5)

		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.tickets.EXPECT().SumQuantityBySchedule(mock.Anything, mock.Anything, schedule.ID).Return(2, nil).Once()
		deps.tickets.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(&model.Ticket{ID: uuid.New()}, nil).Once()

		_, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "Rest", Quantity: 3})
		assert.NoError(t, err)
	})

	t.Run("Failed - quantity accounting sums existing tickets", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)
		schedule := scheduleWithSeats(5)

		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, schedule.ID).Return(schedule, nil).Once()
		deps.tickets.EXPECT().SumQuantityBySchedule(mock.Anything, mock.Anything, schedule.ID).Return(4, nil).Once()

		_, err := svc.Create(ctx, userID, schedule.ID, model.CreateTicketRequest{Name: "VIP", Quantity: 2})

		var capacityErr *apperrors.CapacityExceededError
		require.ErrorAs(t, err, &capacityErr)
		assert.Equal(t, 2, capacityErr.Requested)
		assert.Equal(t, 1, capacityErr.Remaining)
	})

	t.Run("Failed - ScheduleNotFound", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		scheduleID := uuid.New()

		deps.schedules.EXPECT().FindOwnedScheduleWithLock(mock.Anything, mock.Anything, userID, scheduleID).Return(nil, apperrors.ErrScheduleNotFound).Once()

		_, err := svc.Create(ctx, userID, scheduleID, model.CreateTicketRequest{Name: "Standard", Quantity: 1})
		assert.ErrorIs(t, err, apperrors.ErrScheduleNotFound)
	})

	t.Run("Failed - InvalidQuantity", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)

		_, err := svc.Create(ctx, userID, uuid.New(), model.CreateTicketRequest{Name: "Zero", Quantity: 0})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Equal(t, 0, deps.tx.calls)
	})
}

func TestTicketService_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	name := "Renamed"

	t.Run("Success", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), Status: model.TicketStatusDraft}
		patch := model.TicketPatch{Name: &name}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()
		deps.tickets.EXPECT().Update(mock.Anything, ticket.ID, patch).Return(&model.Ticket{ID: ticket.ID, Name: name}, nil).Once()

		updated, err := svc.Update(ctx, userID, ticket.ID, patch)

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("Failed - TicketNotEditable", func(t *testing.T) {
		for _, status := range []model.TicketStatus{model.TicketStatusActive, model.TicketStatusInactive} {
			svc, deps := setupTicketService(t, model.CapacityByRows)
			ticket := &model.Ticket{ID: uuid.New(), Status: status}

			deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()

			_, err := svc.Update(ctx, userID, ticket.ID, model.TicketPatch{Name: &name})
			assert.ErrorIs(t, err, apperrors.ErrTicketNotEditable, string(status))
		}
	})
}

func TestTicketService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - publishing invalidates the public listing", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), ScheduleID: uuid.New(), Status: model.TicketStatusDraft}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()
		deps.tickets.EXPECT().UpdateStatus(mock.Anything, ticket.ID, model.TicketStatusActive).
			Return(&model.Ticket{ID: ticket.ID, Status: model.TicketStatusActive}, nil).Once()
		deps.cache.EXPECT().Invalidate(mock.Anything, ticket.ScheduleID).Return(nil).Once()

		updated, err := svc.UpdateStatus(ctx, userID, ticket.ID, model.TicketStatusActive)

		require.NoError(t, err)
		assert.Equal(t, model.TicketStatusActive, updated.Status)
	})

	t.Run("Success - cache failure does not fail the update", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), ScheduleID: uuid.New(), Status: model.TicketStatusActive}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()
		deps.tickets.EXPECT().UpdateStatus(mock.Anything, ticket.ID, model.TicketStatusInactive).
			Return(&model.Ticket{ID: ticket.ID, Status: model.TicketStatusInactive}, nil).Once()
		deps.cache.EXPECT().Invalidate(mock.Anything, ticket.ScheduleID).Return(errors.New("redis down")).Once()

		_, err := svc.UpdateStatus(ctx, userID, ticket.ID, model.TicketStatusInactive)
		assert.NoError(t, err)
	})

	t.Run("Success - draft to inactive leaves cache alone", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), ScheduleID: uuid.New(), Status: model.TicketStatusDraft}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()
		deps.tickets.EXPECT().UpdateStatus(mock.Anything, ticket.ID, model.TicketStatusInactive).
			Return(&model.Ticket{ID: ticket.ID, Status: model.TicketStatusInactive}, nil).Once()

		_, err := svc.UpdateStatus(ctx, userID, ticket.ID, model.TicketStatusInactive)
		assert.NoError(t, err)
	})

	t.Run("Failed - InvalidStatusTransition", func(t *testing.T) {
		for _, status := range []model.TicketStatus{model.TicketStatusActive, model.TicketStatusInactive} {
			svc, deps := setupTicketService(t, model.CapacityByRows)
			ticket := &model.Ticket{ID: uuid.New(), Status: status}

			deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()

			_, err := svc.UpdateStatus(ctx, userID, ticket.ID, model.TicketStatusDraft)
			assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition, string(status))
		}
	})

	t.Run("Failed - unknown status", func(t *testing.T) {
		svc, _ := setupTicketService(t, model.CapacityByRows)

		_, err := svc.UpdateStatus(ctx, userID, uuid.New(), model.TicketStatus("SOLD_OUT"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestTicketService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), Status: model.TicketStatusDraft}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()
		deps.tickets.EXPECT().Delete(mock.Anything, ticket.ID).Return(nil).Once()

		assert.NoError(t, svc.Remove(ctx, userID, ticket.ID))
	})

	t.Run("Failed - TicketNotDeletable", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByRows)
		ticket := &model.Ticket{ID: uuid.New(), Status: model.TicketStatusActive}

		deps.tickets.EXPECT().FindUserOwnedTicket(mock.Anything, userID, ticket.ID).Return(ticket, nil).Once()

		assert.ErrorIs(t, svc.Remove(ctx, userID, ticket.ID), apperrors.ErrTicketNotDeletable)
	})
}

func TestTicketService_FindActiveTickets(t *testing.T) {
	ctx := context.Background()
	scheduleID := uuid.New()
	listing := []model.PublicTicket{{ID: uuid.New(), Name: "Standard", Price: 12}}

	t.Run("Success - cache hit", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)

		deps.cache.EXPECT().Get(mock.Anything, scheduleID).Return(listing, int64(3), true, nil).Once()

		tickets, err := svc.FindActiveTickets(ctx, scheduleID)

		require.NoError(t, err)
		assert.Equal(t, listing, tickets)
	})

	t.Run("Success - cache miss fills cache at the version read", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)

		deps.cache.EXPECT().Get(mock.Anything, scheduleID).Return(nil, int64(7), false, nil).Once()
		deps.tickets.EXPECT().ListActiveBySchedule(mock.Anything, scheduleID).Return(listing, nil).Once()
		deps.cache.EXPECT().Set(mock.Anything, scheduleID, int64(7), listing).Return(nil).Once()

		tickets, err := svc.FindActiveTickets(ctx, scheduleID)

		require.NoError(t, err)
		assert.Equal(t, listing, tickets)
	})

	t.Run("Success - cache write failure is ignored", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)

		deps.cache.EXPECT().Get(mock.Anything, scheduleID).Return(nil, int64(0), false, nil).Once()
		deps.tickets.EXPECT().ListActiveBySchedule(mock.Anything, scheduleID).Return(listing, nil).Once()
		deps.cache.EXPECT().Set(mock.Anything, scheduleID, int64(0), listing).Return(errors.New("redis down")).Once()

		tickets, err := svc.FindActiveTickets(ctx, scheduleID)

		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})

	t.Run("Success - cache unavailable skips the fill", func(t *testing.T) {
		svc, deps := setupTicketService(t, model.CapacityByQuantity)

		deps.cache.EXPECT().Get(mock.Anything, scheduleID).Return(nil, int64(0), false, errors.New("redis down")).Once()
		deps.tickets.EXPECT().ListActiveBySchedule(mock.Anything, scheduleID).Return(listing, nil).Once()

		tickets, err := svc.FindActiveTickets(ctx, scheduleID)

		require.NoError(t, err)
		assert.Len(t, tickets, 1)
	})
}
