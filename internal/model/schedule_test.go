package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindow(t *testing.T) {
	start := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)
	w := ComputeWindow(start, 135)

	assert.Equal(t, start, w.Start)
	assert.Equal(t, time.Date(2026, 5, 1, 22, 15, 0, 0, time.UTC), w.End)
}

func TestScheduleWindow_Overlaps(t *testing.T) {
	base := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	existing := ComputeWindow(base, 120) // 18:00-20:00

	tests := []struct {
		name  string
		start time.Time
		mins  int
		want  bool
	}{
		{"identical", base, 120, true},
		{"starts inside", base.Add(time.Hour), 120, true},
		{"ends inside", base.Add(-time.Hour), 90, true},
		{"contains", base.Add(-time.Hour), 240, true},
		{"contained", base.Add(30 * time.Minute), 30, true},
		{"back to back after", base.Add(2 * time.Hour), 60, false},
		{"back to back before", base.Add(-time.Hour), 60, false},
		{"disjoint", base.Add(5 * time.Hour), 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := ComputeWindow(tt.start, tt.mins)
			assert.Equal(t, tt.want, existing.Overlaps(candidate))
			assert.Equal(t, tt.want, candidate.Overlaps(existing))
		})
	}
}

func TestScheduleWindow_MatineeFollowUps(t *testing.T) {
	matinee := ComputeWindow(time.Date(2025, 2, 10, 14, 0, 0, 0, time.UTC), 120)
	assert.Equal(t, time.Date(2025, 2, 10, 16, 0, 0, 0, time.UTC), matinee.End)

	assert.True(t, matinee.Overlaps(ComputeWindow(time.Date(2025, 2, 10, 15, 0, 0, 0, time.UTC), 120)))
	assert.False(t, matinee.Overlaps(ComputeWindow(time.Date(2025, 2, 10, 16, 0, 0, 0, time.UTC), 120)))
}
