package service

import (
	"context"
	"theatre-booking/internal/cache"
	"theatre-booking/internal/database"
	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	apperrors "theatre-booking/pkg/app_errors"
	"theatre-booking/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketService interface {
	// Create allocates a DRAFT ticket against the auditorium's remaining seats.
	Create(ctx context.Context, userID, scheduleID uuid.UUID, req model.CreateTicketRequest) (uuid.UUID, error)
	FindAll(ctx context.Context, userID, scheduleID uuid.UUID) ([]*model.Ticket, error)
	FindOne(ctx context.Context, userID, ticketID uuid.UUID) (*model.Ticket, error)
	Update(ctx context.Context, userID, ticketID uuid.UUID, patch model.TicketPatch) (*model.Ticket, error)
	UpdateStatus(ctx context.Context, userID, ticketID uuid.UUID, status model.TicketStatus) (*model.Ticket, error)
	Remove(ctx context.Context, userID, ticketID uuid.UUID) error
	// FindActiveTickets is the public listing; it never exposes quantity or status.
	FindActiveTickets(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, error)
}

type TicketServiceImpl struct {
	tx         database.Transactor
	repository repository.TicketRepository
	schedules  repository.ScheduleRepository
	cache      cache.ActiveTicketCache
	accounting model.CapacityAccounting
}

func NewTicketService(
	tx database.Transactor,
	ticketRepository repository.TicketRepository,
	scheduleRepository repository.ScheduleRepository,
	activeTickets cache.ActiveTicketCache,
	accounting model.CapacityAccounting,
) TicketService {
	return &TicketServiceImpl{
		tx:         tx,
		repository: ticketRepository,
		schedules:  scheduleRepository,
		cache:      activeTickets,
		accounting: accounting,
	}
}

func (s *TicketServiceImpl) Create(ctx context.Context, userID, scheduleID uuid.UUID, req model.CreateTicketRequest) (uuid.UUID, error) {
	if req.Quantity < 1 || req.Price < 0 {
		return uuid.Nil, apperrors.ErrInvalidInput
	}

	var id uuid.UUID
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		// row lock on the schedule: concurrent creations for it queue up here
		schedule, err := s.schedules.FindOwnedScheduleWithLock(ctx, tx, userID, scheduleID)
		if err != nil {
			return err
		}

		allocated, err := s.allocated(ctx, tx, schedule.ID)
		if err != nil {
			return err
		}

		remaining := schedule.Auditorium.SeatMap.SeatCount() - allocated
		if remaining < 0 {
			remaining = 0
		}
		if req.Quantity > remaining {
			return &apperrors.CapacityExceededError{Requested: req.Quantity, Remaining: remaining}
		}

		created, err := s.repository.Create(ctx, tx, &model.Ticket{
			ScheduleID:  schedule.ID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Quantity:    req.Quantity,
			Available:   req.Quantity,
			Status:      model.TicketStatusDraft,
		})
		if err != nil {
			return err
		}

		id = created.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (s *TicketServiceImpl) allocated(ctx context.Context, tx pgx.Tx, scheduleID uuid.UUID) (int, error) {
	if s.accounting == model.CapacityByRows {
		return s.repository.CountBySchedule(ctx, tx, scheduleID)
	}
	return s.repository.SumQuantityBySchedule(ctx, tx, scheduleID)
}

func (s *TicketServiceImpl) FindAll(ctx context.Context, userID, scheduleID uuid.UUID) ([]*model.Ticket, error) {
	if _, err := s.schedules.FindOwnedSchedule(ctx, userID, scheduleID); err != nil {
		return nil, err
	}
	return s.repository.ListBySchedule(ctx, scheduleID)
}

func (s *TicketServiceImpl) FindOne(ctx context.Context, userID, ticketID uuid.UUID) (*model.Ticket, error) {
	return s.repository.FindUserOwnedTicket(ctx, userID, ticketID)
}

func (s *TicketServiceImpl) Update(ctx context.Context, userID, ticketID uuid.UUID, patch model.TicketPatch) (*model.Ticket, error) {
	ticket, err := s.repository.FindUserOwnedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.IsDraft() {
		return nil, apperrors.ErrTicketNotEditable
	}

	if patch.IsEmpty() {
		return nil, apperrors.ErrInvalidInput
	}

	if (patch.Quantity != nil && *patch.Quantity < 1) || (patch.Price != nil && *patch.Price < 0) {
		return nil, apperrors.ErrInvalidInput
	}

	return s.repository.Update(ctx, ticket.ID, patch)
}

func (s *TicketServiceImpl) UpdateStatus(ctx context.Context, userID, ticketID uuid.UUID, status model.TicketStatus) (*model.Ticket, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	ticket, err := s.repository.FindUserOwnedTicket(ctx, userID, ticketID)
	if err != nil {
		return nil, err
	}

	if !ticket.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	updated, err := s.repository.UpdateStatus(ctx, ticket.ID, status)
	if err != nil {
		return nil, err
	}

	// visibility changes only when ACTIVE is entered or left
	if ticket.Status != status && (ticket.Status == model.TicketStatusActive || status == model.TicketStatusActive) {
		s.invalidate(ctx, ticket.ScheduleID)
	}

	return updated, nil
}

func (s *TicketServiceImpl) Remove(ctx context.Context, userID, ticketID uuid.UUID) error {
	ticket, err := s.repository.FindUserOwnedTicket(ctx, userID, ticketID)
	if err != nil {
		return err
	}

	if !ticket.IsDraft() {
		return apperrors.ErrTicketNotDeletable
	}

	return s.repository.Delete(ctx, ticket.ID)
}

func (s *TicketServiceImpl) FindActiveTickets(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, error) {
	log := logger.WithComponent("service").With(zap.String("schedule_id", scheduleID.String()))

	cached, version, ok, cacheErr := s.cache.Get(ctx, scheduleID)
	if cacheErr != nil {
		log.Warn("active ticket cache read failed", zap.Error(cacheErr))
	} else if ok {
		return cached, nil
	}

	tickets, err := s.repository.ListActiveBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// without a version a concurrent invalidation cannot be detected
	if cacheErr != nil {
		return tickets, nil
	}

	// dropped by the cache when a status change invalidated it meanwhile
	if err := s.cache.Set(ctx, scheduleID, version, tickets); err != nil {
		log.Warn("active ticket cache write failed", zap.Error(err))
	}

	return tickets, nil
}

func (s *TicketServiceImpl) invalidate(ctx context.Context, scheduleID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, scheduleID); err != nil {
		logger.WithComponent("service").Warn("active ticket cache invalidation failed",
			zap.String("schedule_id", scheduleID.String()), zap.Error(err))
	}
}
