package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J3FF-omg/SaveFood/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  models.OrderStatus
		to    models.OrderStatus
		actor string
		ok    bool
	}{
		{"seller starts preparing", models.StatusPending, models.StatusPreparing, ActorSeller, true},
		{"admin starts preparing", models.StatusPending, models.StatusPreparing, ActorAdmin, true},
		{"seller cancels pending", models.StatusPending, models.StatusCancelled, ActorSeller, true},
		{"seller cancels preparing", models.StatusPreparing, models.StatusCancelled, ActorSeller, true},
		{"seller delivers", models.StatusPreparing, models.StatusDelivered, ActorSeller, true},
		{"admin delivers", models.StatusPreparing, models.StatusDelivered, ActorAdmin, true},
		{"cannot skip to delivered", models.StatusPending, models.StatusDelivered, ActorSeller, false},
		{"delivered is terminal", models.StatusDelivered, models.StatusPending, ActorAdmin, false},
		{"delivered cannot cancel", models.StatusDelivered, models.StatusCancelled, ActorSeller, false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusPreparing, ActorAdmin, false},
		{"cancelled cannot deliver", models.StatusCancelled, models.StatusDelivered, ActorAdmin, false},
		{"no backwards move", models.StatusPreparing, models.StatusPending, ActorSeller, false},
		{"buyer cannot transition", models.StatusPending, models.StatusCancelled, "buyer", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.actor)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPreparing))
	assert.Empty(t, ValidTransitionsFrom(models.StatusDelivered))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestGetAllTransitionsReturnsCopy(t *testing.T) {
	got := GetAllTransitions()
	require.NotEmpty(t, got)
	for i := range got {
		got[i].From = models.StatusDelivered
		got[i].To = models.StatusPending
	}

	// The authoritative table is unaffected by mutations of the copy.
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusPreparing, ActorSeller))
	assert.Error(t, CanTransition(models.StatusDelivered, models.StatusPending, ActorSeller))
	assert.Equal(t, models.StatusPending, GetAllTransitions()[0].From)
}

func TestTerminal(t *testing.T) {
	assert.True(t, models.StatusDelivered.Terminal())
	assert.True(t, models.StatusCancelled.Terminal())
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusPreparing.Terminal())
}
