package model

import (
	"strings"
	"time"

	apperrors "theatre-booking/pkg/app_errors"

	"github.com/google/uuid"
)

// Seat is one addressable seat within a row.
type Seat struct {
	Column     int    `json:"column"`
	SeatNumber string `json:"seat_number"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

// SeatMap is stored as JSONB on the auditorium row.
type SeatMap struct {
	Rows []SeatRow `json:"rows"`
}

// SeatCount is the physical capacity used to bound ticket inventory.
func (m SeatMap) SeatCount() int {
	total := 0
	for _, row := range m.Rows {
		total += len(row.Seats)
	}
	return total
}

// Validate checks row labels and seat numbers. Seat numbers must be unique across
// the whole map, columns only within their row.
func (m SeatMap) Validate() error {
	if len(m.Rows) == 0 {
		return apperrors.SeatMapError("Seat map must contain at least one row.")
	}

	rowLabels := make(map[string]struct{}, len(m.Rows))
	seatNumbers := make(map[string]struct{})

	for _, row := range m.Rows {
		label := strings.TrimSpace(row.Row)
		if label == "" {
			return apperrors.SeatMapError("Row label must not be empty.")
		}
		if _, dup := rowLabels[label]; dup {
			return apperrors.SeatMapError("Row labels must be unique.")
		}
		rowLabels[label] = struct{}{}

		if len(row.Seats) == 0 {
			return apperrors.SeatMapError("Row " + label + " must contain at least one seat.")
		}

		columns := make(map[int]struct{}, len(row.Seats))
		for _, seat := range row.Seats {
			if seat.Column < 1 {
				return apperrors.SeatMapError("Seat columns must be positive.")
			}
			if _, dup := columns[seat.Column]; dup {
				return apperrors.SeatMapError("Seat columns must be unique within row " + label + ".")
			}
			columns[seat.Column] = struct{}{}

			number := strings.TrimSpace(seat.SeatNumber)
			if number == "" {
				return apperrors.SeatMapError("Seat number must not be empty.")
			}
			if _, dup := seatNumbers[number]; dup {
				return apperrors.SeatMapError("Seat numbers must be unique across all rows.")
			}
			seatNumbers[number] = struct{}{}
		}
	}

	return nil
}

// Auditorium belongs to a theatre. Capacity is advisory; SeatMap is authoritative.
type Auditorium struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TheatreID uuid.UUID `json:"theatre_id" db:"theatre_id"`
	Name      string    `json:"name" db:"name"`
	Capacity  int       `json:"capacity" db:"capacity"`
	SeatMap   SeatMap   `json:"seat_map" db:"seat_map"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Theatre *Theatre `json:"theatre,omitempty" db:"-"`
}

type CreateAuditoriumRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Capacity int     `json:"capacity" binding:"min=0"`
	SeatMap  SeatMap `json:"seat_map" binding:"required"`
}

type UpdateAuditoriumParams struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Capacity *int     `json:"capacity" binding:"omitempty,min=0"`
	SeatMap  *SeatMap `json:"seat_map"`
}

func (p UpdateAuditoriumParams) IsEmpty() bool {
	return p.Name == nil && p.Capacity == nil && p.SeatMap == nil
}

// AuditoriumSummary is the list view of a theatre's auditoriums.
type AuditoriumSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
