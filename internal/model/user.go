package model

import (
	"time"

	"github.com/google/uuid"
)

// User account; Name stays nil until sign-up is completed.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         *string   `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// HasCompletedSignup reports whether the user has given a display name.
func (u *User) HasCompletedSignup() bool {
	return u.Name != nil && *u.Name != ""
}

type UpdateUserParams struct {
	Name         *string
	PasswordHash *string
}

// UserProfile is what a signed-in user sees about themselves.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
