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

const scheduleColumns = `id, auditorium_id, show_id, start_time, end_time, created_at, updated_at`

// joined form used by the ownership lookups
const ownedScheduleQuery = `
	SELECT sc.id, sc.auditorium_id, sc.show_id, sc.start_time, sc.end_time, sc.created_at, sc.updated_at,
		s.id, s.user_id, s.name, s.duration, s.release_date, s.description, s.rating, s.created_at, s.updated_at,
		a.id, a.theatre_id, a.name, a.capacity, a.seat_map, a.created_at, a.updated_at
	FROM schedules sc
	JOIN shows s ON s.id = sc.show_id
	JOIN auditoriums a ON a.id = sc.auditorium_id
	WHERE sc.id = $1 AND s.user_id = $2
`

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
	// FindOwnedSchedule loads the schedule with its show and auditorium when the show belongs to userID.
	FindOwnedSchedule(ctx context.Context, userID, id uuid.UUID) (*model.Schedule, error)
	// CountOverlapping counts schedules in the auditorium whose window intersects w, skipping excludeID.
	CountOverlapping(ctx context.Context, auditoriumID uuid.UUID, w model.ScheduleWindow, excludeID *uuid.UUID) (int, error)
	UpdateWindow(ctx context.Context, id uuid.UUID, w model.ScheduleWindow) (*model.Schedule, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAuditorium(ctx context.Context, theatreID, auditoriumID uuid.UUID) ([]model.AuditoriumSchedule, error)
	ListByShow(ctx context.Context, showID uuid.UUID) ([]model.ShowSchedule, error)

	// Transaction methods
	FindOwnedScheduleWithLock(ctx context.Context, tx pgx.Tx, userID, id uuid.UUID) (*model.Schedule, error)
}

type ScheduleRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) ScheduleRepository {
	return &ScheduleRepositoryImpl{pool: pool}
}

func scanSchedule(row pgx.Row) (*model.Schedule, error) {
	var schedule model.Schedule
	err := row.Scan(
		&schedule.ID,
		&schedule.AuditoriumID,
		&schedule.ShowID,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrScheduleNotFound
		}
		if hasPgCode(err, pgExclusionViolation) {
			return nil, apperrors.ErrScheduleConflict
		}
		return nil, err
	}
	return &schedule, nil
}

func scanOwnedSchedule(row pgx.Row) (*model.Schedule, error) {
	var (
		schedule   model.Schedule
		show       model.Show
		auditorium model.Auditorium
	)
	err := row.Scan(
		&schedule.ID,
		&schedule.AuditoriumID,
		&schedule.ShowID,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
		&show.ID,
		&show.UserID,
		&show.Name,
		&show.Duration,
		&show.ReleaseDate,
		&show.Description,
		&show.Rating,
		&show.CreatedAt,
		&show.UpdatedAt,
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
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, err
	}

	schedule.Show = &show
	schedule.Auditorium = &auditorium
	return &schedule, nil
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, schedule *model.Schedule) (*model.Schedule, error) {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	query := `
		INSERT INTO schedules (id, auditorium_id, show_id, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + scheduleColumns

	return scanSchedule(r.pool.QueryRow(ctx, query,
		schedule.ID, schedule.AuditoriumID, schedule.ShowID, schedule.StartTime.UTC(), schedule.EndTime.UTC(),
	))
}

func (r *ScheduleRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	return scanSchedule(r.pool.QueryRow(ctx, query, id))
}

func (r *ScheduleRepositoryImpl) FindOwnedSchedule(ctx context.Context, userID, id uuid.UUID) (*model.Schedule, error) {
	return scanOwnedSchedule(r.pool.QueryRow(ctx, ownedScheduleQuery, id, userID))
}

// FindOwnedScheduleWithLock holds the schedule row until tx ends, serialising ticket creation per schedule.
func (r *ScheduleRepositoryImpl) FindOwnedScheduleWithLock(ctx context.Context, tx pgx.Tx, userID, id uuid.UUID) (*model.Schedule, error) {
	return scanOwnedSchedule(tx.QueryRow(ctx, ownedScheduleQuery+` FOR UPDATE OF sc`, id, userID))
}

func (r *ScheduleRepositoryImpl) CountOverlapping(ctx context.Context, auditoriumID uuid.UUID, w model.ScheduleWindow, excludeID *uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM schedules
		WHERE auditorium_id = $1
			AND start_time < $3
			AND end_time > $2
			AND ($4::uuid IS NULL OR id <> $4)
	`

	var count int
	err := r.pool.QueryRow(ctx, query, auditoriumID, w.Start.UTC(), w.End.UTC(), excludeID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ScheduleRepositoryImpl) UpdateWindow(ctx context.Context, id uuid.UUID, w model.ScheduleWindow) (*model.Schedule, error) {
	query := `
		UPDATE schedules
		SET start_time = $1, end_time = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + scheduleColumns

	return scanSchedule(r.pool.QueryRow(ctx, query, w.Start.UTC(), w.End.UTC(), time.Now().UTC(), id))
}

func (r *ScheduleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepositoryImpl) ListByAuditorium(ctx context.Context, theatreID, auditoriumID uuid.UUID) ([]model.AuditoriumSchedule, error) {
	query := `
		SELECT sc.id, sc.start_time, sc.end_time, s.id, s.name, s.duration
		FROM schedules sc
		JOIN auditoriums a ON a.id = sc.auditorium_id
		JOIN shows s ON s.id = sc.show_id
		WHERE a.id = $1 AND a.theatre_id = $2
		ORDER BY sc.start_time
	`

	rows, err := r.pool.Query(ctx, query, auditoriumID, theatreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]model.AuditoriumSchedule, 0)
	for rows.Next() {
		var s model.AuditoriumSchedule
		if err := rows.Scan(&s.ID, &s.StartTime, &s.EndTime, &s.Show.ID, &s.Show.Name, &s.Show.Duration); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *ScheduleRepositoryImpl) ListByShow(ctx context.Context, showID uuid.UUID) ([]model.ShowSchedule, error) {
	query := `
		SELECT sc.id, sc.start_time, sc.end_time, a.id, a.name, t.id, t.name
		FROM schedules sc
		JOIN auditoriums a ON a.id = sc.auditorium_id
		JOIN theatres t ON t.id = a.theatre_id
		WHERE sc.show_id = $1
		ORDER BY sc.start_time
	`

	rows, err := r.pool.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]model.ShowSchedule, 0)
	for rows.Next() {
		var s model.ShowSchedule
		err := rows.Scan(
			&s.ID,
			&s.StartTime,
			&s.EndTime,
			&s.Auditorium.ID,
			&s.Auditorium.Name,
			&s.Auditorium.Theatre.ID,
			&s.Auditorium.Theatre.Name,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}
