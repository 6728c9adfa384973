package repository_test

import (
	"context"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"theatre-booking/internal/model"
	"theatre-booking/internal/repository"
	"theatre-booking/internal/testutil"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var testDB *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, cleanup, err := testutil.SetupDB()
	if err != nil {
		log.Printf("Skipping repository tests, test database unavailable: %v", err)
		os.Exit(m.Run())
	}
	testDB = pool

	code := m.Run()
	cleanup()
	os.Exit(code)
}

// getTestDB skips the test when TestMain could not reach Postgres.
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testDB == nil {
		t.Skip("test database not available")
	}
	return testDB
}

func setupTestWithTruncate(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pool := getTestDB(t)
	if err := testutil.Truncate(context.Background(), pool); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	return pool
}

// withTx runs fn inside a transaction that is committed on success.
func withTx(t *testing.T, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	t.Helper()
	return pgx.BeginFunc(context.Background(), pool, fn)
}

type fixture struct {
	user       *model.User
	theatre    *model.Theatre
	auditorium *model.Auditorium
	show       *model.Show
}

// createFixture builds user -> theatre -> auditorium (seats) and a show of durationMinutes.
func createFixture(t *testing.T, pool *pgxpool.Pool, email string, seats int, durationMinutes int) fixture {
	t.Helper()
	ctx := context.Background()

	name := "Owner"
	user, err := repository.NewUserRepository(pool).Create(ctx, &model.User{Email: email, Name: &name})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	theatre, err := repository.NewTheatreRepository(pool).Create(ctx, &model.Theatre{
		UserID: user.ID, Name: "Globe", Location: "London",
	})
	if err != nil {
		t.Fatalf("Failed to create test theatre: %v", err)
	}

	row := model.SeatRow{Row: "A"}
	for i := 1; i <= seats; i++ {
		row.Seats = append(row.Seats, model.Seat{Column: i, SeatNumber: "A" + strconv.Itoa(i)})
	}
	auditorium, err := repository.NewAuditoriumRepository(pool).Create(ctx, &model.Auditorium{
		TheatreID: theatre.ID, Name: "Main", Capacity: seats, SeatMap: model.SeatMap{Rows: []model.SeatRow{row}},
	})
	if err != nil {
		t.Fatalf("Failed to create test auditorium: %v", err)
	}

	show, err := repository.NewShowRepository(pool).Create(ctx, &model.Show{
		UserID:      user.ID,
		Name:        "Hamlet",
		Duration:    durationMinutes,
		ReleaseDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Rating:      8,
	})
	if err != nil {
		t.Fatalf("Failed to create test show: %v", err)
	}

	return fixture{user: user, theatre: theatre, auditorium: auditorium, show: show}
}

func createTestSchedule(t *testing.T, pool *pgxpool.Pool, f fixture, start time.Time) *model.Schedule {
	t.Helper()
	w := model.ComputeWindow(start, f.show.Duration)
	schedule, err := repository.NewScheduleRepository(pool).Create(context.Background(), &model.Schedule{
		AuditoriumID: f.auditorium.ID,
		ShowID:       f.show.ID,
		StartTime:    w.Start,
		EndTime:      w.End,
	})
	if err != nil {
		t.Fatalf("Failed to create test schedule: %v", err)
	}
	return schedule
}
