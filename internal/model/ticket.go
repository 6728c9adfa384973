package model

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusDraft    TicketStatus = "DRAFT"
	TicketStatusActive   TicketStatus = "ACTIVE"
	TicketStatusInactive TicketStatus = "INACTIVE"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusDraft, TicketStatusActive, TicketStatusInactive:
		return true
	}
	return false
}

// CanTransitionTo checks the lifecycle table. Staying in the same status is allowed;
// a published ticket never goes back to draft.
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	transitions := map[TicketStatus][]TicketStatus{
		TicketStatusDraft:    {TicketStatusDraft, TicketStatusActive, TicketStatusInactive},
		TicketStatusActive:   {TicketStatusActive, TicketStatusInactive},
		TicketStatusInactive: {TicketStatusInactive, TicketStatusActive},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Ticket is a sellable category for one schedule, not a seat.
type Ticket struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	ScheduleID  uuid.UUID    `json:"schedule_id" db:"schedule_id"`
	Name        string       `json:"name" db:"name"`
	Description string       `json:"description" db:"description"`
	Price       float64      `json:"price" db:"price"`
	Quantity    int          `json:"quantity" db:"quantity"`
	Available   int          `json:"available" db:"available"`
	Status      TicketStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

func (t *Ticket) IsDraft() bool {
	return t.Status == TicketStatusDraft
}

type CreateTicketRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

// TicketPatch is a partial edit; nil fields are left untouched.
type TicketPatch struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,min=1"`
}

func (p TicketPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Quantity == nil
}

// Apply returns a copy of t with the present fields replaced.
func (p TicketPatch) Apply(t Ticket) Ticket {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
		t.Available = *p.Quantity
	}
	return t
}

type UpdateTicketStatusRequest struct {
	Status TicketStatus `json:"status" binding:"required"`
}

// PublicTicket is what customers see for an active ticket.
type PublicTicket struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
}

// CapacityAccounting selects how already created tickets are charged against seats.
type CapacityAccounting string

const (
	// sum of existing ticket quantities; keeps the schedule within its seat count
	CapacityByQuantity CapacityAccounting = "quantity"
	// one seat per existing ticket row, opt-in only
	CapacityByRows CapacityAccounting = "rows"
)

// ParseCapacityAccounting falls back to CapacityByQuantity for anything but "rows".
func ParseCapacityAccounting(v string) CapacityAccounting {
	if CapacityAccounting(v) == CapacityByRows {
		return CapacityByRows
	}
	return CapacityByQuantity
}
