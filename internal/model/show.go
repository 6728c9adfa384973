package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinShowDuration = 1
	MaxShowDuration = 600
	MinShowRating   = 1
	MaxShowRating   = 10
)

// Show owned by a user. Duration is in minutes.
type Show struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Duration    int       `json:"duration" db:"duration"`
	ReleaseDate time.Time `json:"release_date" db:"release_date"`
	Description string    `json:"description" db:"description"`
	Rating      int       `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateShowRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Duration    int       `json:"duration" binding:"required,min=1,max=600"`
	ReleaseDate time.Time `json:"release_date" binding:"required"`
	Description string    `json:"description"`
	Rating      int       `json:"rating" binding:"required,min=1,max=10"`
}

// UpdateShowParams has no duration: existing schedules derive their end time from it.
type UpdateShowParams struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255"`
	ReleaseDate *time.Time `json:"release_date"`
	Description *string    `json:"description"`
	Rating      *int       `json:"rating" binding:"omitempty,min=1,max=10"`
}

func (p UpdateShowParams) IsEmpty() bool {
	return p.Name == nil && p.ReleaseDate == nil && p.Description == nil && p.Rating == nil
}

// Valid reports whether the rating is inside the accepted range.
func (p UpdateShowParams) Valid() bool {
	if p.Rating != nil && (*p.Rating < MinShowRating || *p.Rating > MaxShowRating) {
		return false
	}
	return true
}
