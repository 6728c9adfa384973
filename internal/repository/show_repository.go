package repository

import (
	"context"
	"theatre-booking/internal/model"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const showColumns = `id, user_id, name, duration, release_date, description, rating, created_at, updated_at`

type ShowRepository interface {
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Show, error)
	FindOwnedShow(ctx context.Context, userID, id uuid.UUID) (*model.Show, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Show, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateShowParams) (*model.Show, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{pool: pool}
}

func scanShow(row pgx.Row) (*model.Show, error) {
	var show model.Show
	err := row.Scan(
		&show.ID,
		&show.UserID,
		&show.Name,
		&show.Duration,
		&show.ReleaseDate,
		&show.Description,
		&show.Rating,
		&show.CreatedAt,
		&show.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrShowNotFound
		}
		return nil, err
	}
	return &show, nil
}

func (r *ShowRepositoryImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	if show.ID == uuid.Nil {
		show.ID = uuid.New()
	}

	query := `
		INSERT INTO shows (id, user_id, name, duration, release_date, description, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + showColumns

	return scanShow(r.pool.QueryRow(ctx, query,
		show.ID, show.UserID, show.Name, show.Duration, show.ReleaseDate, show.Description, show.Rating,
	))
}

func (r *ShowRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE id = $1`
	return scanShow(r.pool.QueryRow(ctx, query, id))
}

func (r *ShowRepositoryImpl) FindOwnedShow(ctx context.Context, userID, id uuid.UUID) (*model.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE id = $1 AND user_id = $2`
	return scanShow(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *ShowRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE user_id = $1 ORDER BY release_date DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*model.Show, 0)
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (r *ShowRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateShowParams) (*model.Show, error) {
	var u updateSet
	if params.Name != nil {
		u.add("name", *params.Name)
	}
	if params.ReleaseDate != nil {
		u.add("release_date", *params.ReleaseDate)
	}
	if params.Description != nil {
		u.add("description", *params.Description)
	}
	if params.Rating != nil {
		u.add("rating", *params.Rating)
	}
	if u.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := u.build("shows", id, showColumns)
	return scanShow(r.pool.QueryRow(ctx, query, args...))
}

func (r *ShowRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrShowNotFound
	}
	return nil
}
