package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleWindow is the half-open interval [Start, End) an auditorium is occupied.
type ScheduleWindow struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow derives the end time from the show duration in minutes.
func ComputeWindow(start time.Time, durationMinutes int) ScheduleWindow {
	return ScheduleWindow{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps reports whether two half-open windows intersect. Back-to-back windows do not.
func (w ScheduleWindow) Overlaps(other ScheduleWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Schedule books one show into one auditorium. EndTime is always derived.
type Schedule struct {
	ID           uuid.UUID `json:"id" db:"id"`
	AuditoriumID uuid.UUID `json:"auditorium_id" db:"auditorium_id"`
	ShowID       uuid.UUID `json:"show_id" db:"show_id"`
	StartTime    time.Time `json:"start_time" db:"start_time"`
	EndTime      time.Time `json:"end_time" db:"end_time"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	Show       *Show       `json:"show,omitempty" db:"-"`
	Auditorium *Auditorium `json:"auditorium,omitempty" db:"-"`
}

func (s *Schedule) Window() ScheduleWindow {
	return ScheduleWindow{Start: s.StartTime, End: s.EndTime}
}

type CreateScheduleRequest struct {
	AuditoriumID uuid.UUID `json:"auditorium_id" binding:"required"`
	ShowID       uuid.UUID `json:"show_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
}

type UpdateScheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

// ScheduleSummary is returned after create/update; only the id leaves the service.
type ScheduleSummary struct {
	ID uuid.UUID `json:"id"`
}

type ScheduleShowInfo struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Duration int       `json:"duration"`
}

// AuditoriumSchedule is one entry of an auditorium's timetable.
type AuditoriumSchedule struct {
	ID        uuid.UUID        `json:"id"`
	StartTime time.Time        `json:"start_time"`
	EndTime   time.Time        `json:"end_time"`
	Show      ScheduleShowInfo `json:"show"`
}

type ScheduleTheatreInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ScheduleAuditoriumInfo struct {
	ID      uuid.UUID           `json:"id"`
	Name    string              `json:"name"`
	Theatre ScheduleTheatreInfo `json:"theatre"`
}

// ShowSchedule is one screening of a show with where it takes place.
type ShowSchedule struct {
	ID         uuid.UUID              `json:"id"`
	StartTime  time.Time              `json:"start_time"`
	EndTime    time.Time              `json:"end_time"`
	Auditorium ScheduleAuditoriumInfo `json:"auditorium"`
}
