package repository

import (
	"context"
	"theatre-booking/internal/model"
	apperrors "theatre-booking/pkg/app_errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ticketColumns = `id, schedule_id, name, description, price, quantity, available, status, created_at, updated_at`

type TicketRepository interface {
	// FindUserOwnedTicket walks ticket -> schedule -> show -> user.
	FindUserOwnedTicket(ctx context.Context, userID, id uuid.UUID) (*model.Ticket, error)
	ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*model.Ticket, error)
	ListActiveBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, error)
	// Update applies the patch to a DRAFT ticket.
	Update(ctx context.Context, id uuid.UUID, patch model.TicketPatch) (*model.Ticket, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TicketStatus) (*model.Ticket, error)
	// Delete removes a DRAFT ticket.
	Delete(ctx context.Context, id uuid.UUID) error

	// Transaction methods
	Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error)
	CountBySchedule(ctx context.Context, tx pgx.Tx, scheduleID uuid.UUID) (int, error)
	SumQuantityBySchedule(ctx context.Context, tx pgx.Tx, scheduleID uuid.UUID) (int, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func scanTicket(row pgx.Row) (*model.Ticket, error) {
	var ticket model.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.ScheduleID,
		&ticket.Name,
		&ticket.Description,
		&ticket.Price,
		&ticket.Quantity,
		&ticket.Available,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, tx pgx.Tx, ticket *model.Ticket) (*model.Ticket, error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}

	query := `
		INSERT INTO tickets (id, schedule_id, name, description, price, quantity, available, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ticketColumns

	return scanTicket(tx.QueryRow(ctx, query,
		ticket.ID, ticket.ScheduleID, ticket.Name, ticket.Description,
		ticket.Price, ticket.Quantity, ticket.Available, ticket.Status,
	))
}

func (r *TicketRepositoryImpl) FindUserOwnedTicket(ctx context.Context, userID, id uuid.UUID) (*model.Ticket, error) {
	query := `
		SELECT t.id, t.schedule_id, t.name, t.description, t.price, t.quantity,
			t.available, t.status, t.created_at, t.updated_at
		FROM tickets t
		JOIN schedules sc ON sc.id = t.schedule_id
		JOIN shows s ON s.id = sc.show_id
		WHERE t.id = $1 AND s.user_id = $2
	`
	return scanTicket(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *TicketRepositoryImpl) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE schedule_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]*model.Ticket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) ListActiveBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]model.PublicTicket, error) {
	query := `
		SELECT id, name, description, price
		FROM tickets
		WHERE schedule_id = $1 AND status = $2
		ORDER BY price, name
	`

	rows, err := r.pool.Query(ctx, query, scheduleID, model.TicketStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]model.PublicTicket, 0)
	for rows.Next() {
		var t model.PublicTicket
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Price); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepositoryImpl) CountBySchedule(ctx context.Context, tx pgx.Tx, scheduleID uuid.UUID) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE schedule_id = $1`, scheduleID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TicketRepositoryImpl) SumQuantityBySchedule(ctx context.Context, tx pgx.Tx, scheduleID uuid.UUID) (int, error) {
	var total int
	err := tx.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM tickets WHERE schedule_id = $1`, scheduleID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, id uuid.UUID, patch model.TicketPatch) (*model.Ticket, error) {
	var u updateSet
	if patch.Name != nil {
		u.add("name", *patch.Name)
	}
	if patch.Description != nil {
		u.add("description", *patch.Description)
	}
	if patch.Price != nil {
		u.add("price", *patch.Price)
	}
	if patch.Quantity != nil {
		u.add("quantity", *patch.Quantity)
		u.add("available", *patch.Quantity)
	}
	if u.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	// a ticket published in the meantime must not be edited
	u.guard("status", model.TicketStatusDraft)
	query, args := u.build("tickets", id, ticketColumns)

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, args...))
	if err == apperrors.ErrTicketNotFound {
		return nil, apperrors.ErrTicketNotEditable
	}
	return ticket, err
}

func (r *TicketRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TicketStatus) (*model.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = $1, updated_at = $2
		WHERE id = $3 AND ($1 <> 'DRAFT' OR status = 'DRAFT')
		RETURNING ` + ticketColumns

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, status, time.Now().UTC(), id))
	if err == apperrors.ErrTicketNotFound {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	return ticket, err
}

func (r *TicketRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id = $1 AND status = $2`, id, model.TicketStatusDraft)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTicketNotDeletable
	}

	return nil
}
