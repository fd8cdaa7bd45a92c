package etorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusCompleted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("SHIPPED").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestNewOrderItemComputesTotalPrice(t *testing.T) {
	item, err := NewOrderItem("item-1", "so-1", 1001, 3, 1999)
	require.NoError(t, err)
	assert.Equal(t, int64(5997), item.TotalPrice)
}

func TestNewOrderItemRejectsBadInput(t *testing.T) {
	_, err := NewOrderItem("item-1", "so-1", 1001, 0, 1999)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewOrderItem("item-1", "so-1", 1001, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)
}

func TestNewParentOrderStartsPendingWithZeroTotal(t *testing.T) {
	order, err := NewParentOrder("id-1", 42, "PO1001", "USD")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Zero(t, order.TotalAmount)
}

func TestNewParentOrderRejectsBadInput(t *testing.T) {
	_, err := NewParentOrder("", 42, "PO1001", "USD")
	assert.ErrorIs(t, err, ErrInvalidOrderID)

	_, err = NewParentOrder("id-1", 0, "PO1001", "USD")
	assert.ErrorIs(t, err, ErrInvalidCustomerID)

	_, err = NewParentOrder("id-1", 42, "", "USD")
	assert.ErrorIs(t, err, ErrInvalidOrderNumber)
}
