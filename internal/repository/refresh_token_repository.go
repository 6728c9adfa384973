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

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	// FindValid returns the unexpired token with this hash belonging to userID.
	FindValid(ctx context.Context, userID uuid.UUID, tokenHash string) (*model.RefreshToken, error)
	// Expire sets expires_at to now so the token can no longer be used.
	// Only one caller can expire a live token; later calls get ErrInvalidToken.
	Expire(ctx context.Context, id uuid.UUID) error
}

type RefreshTokenRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRefreshTokenRepository(pool *pgxpool.Pool) RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{pool: pool}
}

func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *model.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	query := `
		INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.pool.QueryRow(ctx, query, token.ID, token.UserID, token.TokenHash, token.ExpiresAt).Scan(&token.CreatedAt)
}

func (r *RefreshTokenRepositoryImpl) FindValid(ctx context.Context, userID uuid.UUID, tokenHash string) (*model.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1 AND user_id = $2 AND expires_at > $3
	`

	var token model.RefreshToken
	err := r.pool.QueryRow(ctx, query, tokenHash, userID, time.Now().UTC()).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	return &token, nil
}

func (r *RefreshTokenRepositoryImpl) Expire(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE refresh_tokens SET expires_at = $1 WHERE id = $2 AND expires_at > $1`

	result, err := r.pool.Exec(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrInvalidToken
	}

	return nil
}
