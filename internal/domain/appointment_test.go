package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		want     bool
	}{
		{StatusScheduled, StatusCompleted, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusCancelled, StatusScheduled, true},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusScheduled, StatusScheduled, false},
		{AppointmentStatus("unknown"), StatusScheduled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestAllowedTransitions_CompletedIsTerminal(t *testing.T) {
	assert.Empty(t, StatusCompleted.AllowedTransitions())
	assert.ElementsMatch(t, []AppointmentStatus{StatusCompleted, StatusCancelled}, StatusScheduled.AllowedTransitions())
	assert.Equal(t, []AppointmentStatus{StatusScheduled}, StatusCancelled.AllowedTransitions())
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	next := StatusScheduled.AllowedTransitions()
	next[0] = StatusCancelled
	assert.True(t, CanTransition(StatusScheduled, StatusCompleted))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Agendado", StatusScheduled.Label())
	assert.Equal(t, "Concluído", StatusCompleted.Label())
	assert.Equal(t, "Cancelado", StatusCancelled.Label())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, AppointmentStatus("pending").IsValid())
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]AppointmentStatus{
		StatusScheduled, StatusScheduled, StatusCompleted, StatusCancelled,
	}, 7)

	assert.Equal(t, AppointmentStats{Total: 4, Scheduled: 2, Completed: 1, TotalCustomers: 7}, stats)
}
