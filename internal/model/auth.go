package model

import (
	"time"

	"github.com/google/uuid"
)

type NextAction string

const (
	NextActionSignIn         NextAction = "sign_in"
	NextActionCompleteSignup NextAction = "complete_signup"
)

// RefreshToken stores only the sha256 of the opaque token handed to the client.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

// MagicLinkIdentity is the outcome of a verified magic link.
type MagicLinkIdentity struct {
	UserID     uuid.UUID  `json:"user_id"`
	Email      string     `json:"email"`
	NextAction NextAction `json:"next_action"`
}

// LoginResult carries tokens when signed in, or a signup token when a name is still missing.
type LoginResult struct {
	Message     string     `json:"message,omitempty"`
	NextAction  NextAction `json:"next_action"`
	SignupToken string     `json:"signup_token,omitempty"`
	Tokens      *TokenPair `json:"tokens,omitempty"`
}

// MailMessage is queued for the mail worker.
type MailMessage struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Subject     string    `json:"subject"`
	Link        string    `json:"link"`
	QueuedAt    time.Time `json:"queued_at"`
}

type MagicLinkRequest struct {
	Destination string `json:"destination" binding:"required,email"`
}

// CompleteSignupRequest carries the signup token handed out by the magic-link callback.
type CompleteSignupRequest struct {
	Token string `json:"token" binding:"required"`
	Name  string `json:"name" binding:"required,min=1,max=255"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	UserID       uuid.UUID `json:"user_id" binding:"required"`
	RefreshToken string    `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
