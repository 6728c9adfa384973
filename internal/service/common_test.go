package service_test

import (
	"context"
	"strconv"

	"theatre-booking/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// inlineTransactor runs fn without a database; repository mocks ignore the tx.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	t.calls++
	return fn(nil)
}

// seatMap builds a single-row map with n seats.
func seatMap(n int) model.SeatMap {
	seats := make([]model.Seat, n)
	for i := range seats {
		seats[i] = model.Seat{Column: i + 1, SeatNumber: "A" + strconv.Itoa(i+1)}
	}
	return model.SeatMap{Rows: []model.SeatRow{{Row: "A", Seats: seats}}}
}

func scheduleWithSeats(n int) *model.Schedule {
	auditoriumID := uuid.New()
	return &model.Schedule{
		ID:           uuid.New(),
		AuditoriumID: auditoriumID,
		ShowID:       uuid.New(),
		Auditorium:   &model.Auditorium{ID: auditoriumID, SeatMap: seatMap(n)},
		Show:         &model.Show{Duration: 90},
	}
}
