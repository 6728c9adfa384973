package model

import (
	"time"

	"github.com/google/uuid"
)

type Theatre struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateTheatreRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location" binding:"required,max=255"`
}

type UpdateTheatreParams struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Location *string `json:"location" binding:"omitempty,min=1,max=255"`
}

func (p UpdateTheatreParams) IsEmpty() bool {
	return p.Name == nil && p.Location == nil
}
