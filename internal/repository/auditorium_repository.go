package repository

import (
	"context"
	"theatre-booking/internal/model"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditoriumColumns = `a.id, a.theatre_id, a.name, a.capacity, a.seat_map, a.created_at, a.updated_at`

type AuditoriumRepository interface {
	Create(ctx context.Context, auditorium *model.Auditorium) (*model.Auditorium, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Auditorium, error)
	// FindUserAuditorium resolves the auditorium only if its theatre belongs to userID.
	FindUserAuditorium(ctx context.Context, userID, id uuid.UUID) (*model.Auditorium, error)
	ListByTheatre(ctx context.Context, theatreID uuid.UUID) ([]model.AuditoriumSummary, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateAuditoriumParams) (*model.Auditorium, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AuditoriumRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewAuditoriumRepository(pool *pgxpool.Pool) AuditoriumRepository {
	return &AuditoriumRepositoryImpl{pool: pool}
}

func scanAuditorium(row pgx.Row) (*model.Auditorium, error) {
	var auditorium model.Auditorium
	err := row.Scan(
		&auditorium.ID,
		&auditorium.TheatreID,
		&auditorium.Name,
		&auditorium.Capacity,
		&auditorium.SeatMap,
		&auditorium.CreatedAt,
		&auditorium.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrAuditoriumNotFound
		}
		return nil, err
	}
	return &auditorium, nil
}

func (r *AuditoriumRepositoryImpl) Create(ctx context.Context, auditorium *model.Auditorium) (*model.Auditorium, error) {
	if auditorium.ID == uuid.Nil {
		auditorium.ID = uuid.New()
	}

	query := `
		INSERT INTO auditoriums AS a (id, theatre_id, name, capacity, seat_map)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + auditoriumColumns

	return scanAuditorium(r.pool.QueryRow(ctx, query,
		auditorium.ID, auditorium.TheatreID, auditorium.Name, auditorium.Capacity, auditorium.SeatMap,
	))
}

func (r *AuditoriumRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Auditorium, error) {
	query := `SELECT ` + auditoriumColumns + ` FROM auditoriums a WHERE a.id = $1`
	return scanAuditorium(r.pool.QueryRow(ctx, query, id))
}

func (r *AuditoriumRepositoryImpl) FindUserAuditorium(ctx context.Context, userID, id uuid.UUID) (*model.Auditorium, error) {
	query := `
		SELECT ` + auditoriumColumns + `
		FROM auditoriums a
		JOIN theatres t ON t.id = a.theatre_id
		WHERE a.id = $1 AND t.user_id = $2
	`
	return scanAuditorium(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *AuditoriumRepositoryImpl) ListByTheatre(ctx context.Context, theatreID uuid.UUID) ([]model.AuditoriumSummary, error) {
	query := `
		SELECT id, name, capacity, created_at
		FROM auditoriums
		WHERE theatre_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, theatreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	auditoriums := make([]model.AuditoriumSummary, 0)
	for rows.Next() {
		var a model.AuditoriumSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.Capacity, &a.CreatedAt); err != nil {
			return nil, err
		}
		auditoriums = append(auditoriums, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return auditoriums, nil
}

func (r *AuditoriumRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateAuditoriumParams) (*model.Auditorium, error) {
	var u updateSet
	if params.Name != nil {
		u.add("name", *params.Name)
	}
	if params.Capacity != nil {
		u.add("capacity", *params.Capacity)
	}
	if params.SeatMap != nil {
		u.add("seat_map", *params.SeatMap)
	}
	if u.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := u.build("auditoriums AS a", id, auditoriumColumns)
	return scanAuditorium(r.pool.QueryRow(ctx, query, args...))
}

func (r *AuditoriumRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM auditoriums WHERE id = $1`, id)
	if err != nil {
		if hasPgCode(err, pgForeignKeyViolation) {
			return apperrors.ErrAuditoriumInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAuditoriumNotFound
	}
	return nil
}
