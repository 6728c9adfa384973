package repository

import (
	"context"
	"theatre-booking/internal/model"
	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const theatreColumns = `id, user_id, name, location, created_at, updated_at`

type TheatreRepository interface {
	Create(ctx context.Context, theatre *model.Theatre) (*model.Theatre, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Theatre, error)
	FindUserTheatre(ctx context.Context, userID, id uuid.UUID) (*model.Theatre, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Theatre, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateTheatreParams) (*model.Theatre, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TheatreRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTheatreRepository(pool *pgxpool.Pool) TheatreRepository {
	return &TheatreRepositoryImpl{pool: pool}
}

func scanTheatre(row pgx.Row) (*model.Theatre, error) {
	var theatre model.Theatre
	err := row.Scan(
		&theatre.ID,
		&theatre.UserID,
		&theatre.Name,
		&theatre.Location,
		&theatre.CreatedAt,
		&theatre.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTheatreNotFound
		}
		return nil, err
	}
	return &theatre, nil
}

func (r *TheatreRepositoryImpl) Create(ctx context.Context, theatre *model.Theatre) (*model.Theatre, error) {
	if theatre.ID == uuid.Nil {
		theatre.ID = uuid.New()
	}

	query := `
		INSERT INTO theatres (id, user_id, name, location)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + theatreColumns

	return scanTheatre(r.pool.QueryRow(ctx, query, theatre.ID, theatre.UserID, theatre.Name, theatre.Location))
}

func (r *TheatreRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres WHERE id = $1`
	return scanTheatre(r.pool.QueryRow(ctx, query, id))
}

func (r *TheatreRepositoryImpl) FindUserTheatre(ctx context.Context, userID, id uuid.UUID) (*model.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres WHERE id = $1 AND user_id = $2`
	return scanTheatre(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *TheatreRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Theatre, error) {
	query := `SELECT ` + theatreColumns + ` FROM theatres WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theatres := make([]*model.Theatre, 0)
	for rows.Next() {
		theatre, err := scanTheatre(rows)
		if err != nil {
			return nil, err
		}
		theatres = append(theatres, theatre)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return theatres, nil
}

func (r *TheatreRepositoryImpl) Update(ctx context.Context, id uuid.UUID, params model.UpdateTheatreParams) (*model.Theatre, error) {
	var u updateSet
	if params.Name != nil {
		u.add("name", *params.Name)
	}
	if params.Location != nil {
		u.add("location", *params.Location)
	}
	if u.empty() {
		return nil, apperrors.ErrInvalidInput
	}

	query, args := u.build("theatres", id, theatreColumns)
	return scanTheatre(r.pool.QueryRow(ctx, query, args...))
}

func (r *TheatreRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM theatres WHERE id = $1`, id)
	if err != nil {
		// an auditorium of this theatre still has schedules
		if hasPgCode(err, pgForeignKeyViolation) {
			return apperrors.ErrAuditoriumInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTheatreNotFound
	}
	return nil
}
