package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J3FF-omg/SaveFood/models"
	"github.com/J3FF-omg/SaveFood/statemachine"
)

func testOrder() models.Order {
	return models.Order{
		BuyerID:      "2",
		RestaurantID: "1",
		Lines: []models.OrderLine{
			{FoodID: "1", Quantity: 2, Price: 450},
		},
		TotalPrice:   900,
		DeliveryType: models.DeliveryPickup,
	}
}

func TestAppend(t *testing.T) {
	ledger := NewLedger(newTestDB(t))

	in := testOrder()
	in.Status = models.StatusDelivered // callers cannot smuggle in a status

	order, err := ledger.Append(in)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	got, err := ledger.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.Equal(t, 450.0, got.Lines[0].Price)
}

func TestAppendRejectsEmptyOrder(t *testing.T) {
	ledger := NewLedger(newTestDB(t))
	_, err := ledger.Append(models.Order{BuyerID: "2", RestaurantID: "1"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestListByBuyerAndRestaurant(t *testing.T) {
	ledger := NewLedger(newTestDB(t))

	first, err := ledger.Append(testOrder())
	require.NoError(t, err)

	other := testOrder()
	other.BuyerID = "9"
	other.RestaurantID = "7"
	_, err = ledger.Append(other)
	require.NoError(t, err)

	byBuyer, err := ledger.ByBuyer("2")
	require.NoError(t, err)
	require.Len(t, byBuyer, 1)
	assert.Equal(t, first.ID, byBuyer[0].ID)

	byRestaurant, err := ledger.ByRestaurant("7")
	require.NoError(t, err)
	assert.Len(t, byRestaurant, 1)

	all, err := ledger.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetStatus(t *testing.T) {
	ledger := NewLedger(newTestDB(t))
	order, err := ledger.Append(testOrder())
	require.NoError(t, err)

	prev, err := ledger.SetStatus(order.ID, models.StatusPreparing, statemachine.ActorSeller)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, prev.Status)

	got, err := ledger.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, got.Status)

	_, err = ledger.SetStatus(order.ID, models.StatusDelivered, statemachine.ActorSeller)
	require.NoError(t, err)
}

func TestSetStatusIllegalTransitions(t *testing.T) {
	ledger := NewLedger(newTestDB(t))

	tests := []struct {
		name string
		via  []models.OrderStatus
		to   models.OrderStatus
	}{
		{name: "pending to delivered skips preparing", to: models.StatusDelivered},
		{name: "delivered is terminal", via: []models.OrderStatus{models.StatusPreparing, models.StatusDelivered}, to: models.StatusPending},
		{name: "delivered cannot be cancelled", via: []models.OrderStatus{models.StatusPreparing, models.StatusDelivered}, to: models.StatusCancelled},
		{name: "cancelled is terminal", via: []models.OrderStatus{models.StatusCancelled}, to: models.StatusPreparing},
		{name: "cancelled cannot be delivered", via: []models.OrderStatus{models.StatusCancelled}, to: models.StatusDelivered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := ledger.Append(testOrder())
			require.NoError(t, err)
			for _, s := range tt.via {
				_, err = ledger.SetStatus(order.ID, s, statemachine.ActorAdmin)
				require.NoError(t, err)
			}

			_, err = ledger.SetStatus(order.ID, tt.to, statemachine.ActorAdmin)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			// The order keeps the status it had before the rejected call.
			got, err := ledger.Get(order.ID)
			require.NoError(t, err)
			want := models.StatusPending
			if len(tt.via) > 0 {
				want = tt.via[len(tt.via)-1]
			}
			assert.Equal(t, want, got.Status)
		})
	}
}

func TestSetStatusUnknownActor(t *testing.T) {
	ledger := NewLedger(newTestDB(t))
	order, err := ledger.Append(testOrder())
	require.NoError(t, err)

	_, err = ledger.SetStatus(order.ID, models.StatusPreparing, "buyer")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatusUnknownOrder(t *testing.T) {
	ledger := NewLedger(newTestDB(t))
	_, err := ledger.SetStatus("no-such-order", models.StatusPreparing, statemachine.ActorSeller)
	assert.ErrorIs(t, err, ErrNotFound)
}
