package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{TicketStatusDraft, TicketStatusDraft, true},
		{TicketStatusDraft, TicketStatusActive, true},
		{TicketStatusDraft, TicketStatusInactive, true},
		{TicketStatusActive, TicketStatusActive, true},
		{TicketStatusActive, TicketStatusInactive, true},
		{TicketStatusActive, TicketStatusDraft, false},
		{TicketStatusInactive, TicketStatusActive, true},
		{TicketStatusInactive, TicketStatusInactive, true},
		{TicketStatusInactive, TicketStatusDraft, false},
		{TicketStatus("SOLD"), TicketStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketPatch_Apply(t *testing.T) {
	ticket := Ticket{Name: "Standard", Description: "Stalls", Price: 10, Quantity: 5, Available: 5}

	t.Run("partial", func(t *testing.T) {
		price := 12.5
		got := TicketPatch{Price: &price}.Apply(ticket)

		assert.Equal(t, 12.5, got.Price)
		assert.Equal(t, "Standard", got.Name)
		assert.Equal(t, 5, got.Quantity)
	})

	t.Run("quantity resets available", func(t *testing.T) {
		quantity := 8
		got := TicketPatch{Quantity: &quantity}.Apply(ticket)

		assert.Equal(t, 8, got.Quantity)
		assert.Equal(t, 8, got.Available)
		assert.Equal(t, 5, ticket.Quantity)
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, TicketPatch{}.IsEmpty())
		assert.Equal(t, ticket, TicketPatch{}.Apply(ticket))
	})
}

func TestParseCapacityAccounting(t *testing.T) {
	assert.Equal(t, CapacityByQuantity, ParseCapacityAccounting("quantity"))
	assert.Equal(t, CapacityByRows, ParseCapacityAccounting("rows"))
	assert.Equal(t, CapacityByQuantity, ParseCapacityAccounting(""))
	assert.Equal(t, CapacityByQuantity, ParseCapacityAccounting("unknown"))
}
