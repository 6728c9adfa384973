package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrTheatreNotFound    = errors.New("theatre not found")
	ErrAuditoriumNotFound = errors.New("invalid auditorium ID")
	ErrShowNotFound       = errors.New("invalid show ID")
	ErrScheduleNotFound   = errors.New("invalid schedule ID")
	ErrTicketNotFound     = errors.New("invalid ticket ID")
	ErrUserNotFound       = errors.New("user not found")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignupRequired     = errors.New("you need to complete the magic link flow first")

	ErrScheduleConflict = errors.New("schedule conflicts with an existing booking")
	ErrCapacityExceeded = errors.New("ticket capacity exceeded")

	ErrTicketNotEditable       = errors.New("only draft tickets can be updated")
	ErrTicketNotDeletable      = errors.New("only draft tickets can be deleted")
	ErrInvalidStatusTransition = errors.New("active or inactive ticket cannot return to draft")

	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidSeatMap      = errors.New("invalid seat map")
	ErrEmailTaken          = errors.New("email already registered")
	ErrAuditoriumInUse     = errors.New("auditorium still has schedules")
	ErrInternalServerError = errors.New("internal server error")
)

// CapacityExceededError reports how many tickets were requested against what is left.
type CapacityExceededError struct {
	Requested int
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("Cannot create %d tickets. Only %d more tickets can be created.", e.Requested, e.Remaining)
}

func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// SeatMapError wraps ErrInvalidSeatMap with the rule that was broken.
func SeatMapError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSeatMap, detail)
}
