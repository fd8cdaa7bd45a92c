package etcommission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPaidSetsStatusAndTime(t *testing.T) {
	c, err := NewCommission("c-1", "item-1", 1, 1000, 200)
	require.NoError(t, err)

	paidAt := time.Now()
	require.NoError(t, c.MarkPaid(paidAt))
	assert.Equal(t, CommissionStatusPaid, c.Status)
	require.NotNil(t, c.PaidAt)
	assert.True(t, c.PaidAt.Equal(paidAt))
}

func TestMarkPaidRejectsDoubleSettlement(t *testing.T) {
	c, err := NewCommission("c-1", "item-1", 1, 1000, 200)
	require.NoError(t, err)

	require.NoError(t, c.MarkPaid(time.Now()))
	assert.ErrorIs(t, c.MarkPaid(time.Now()), ErrAlreadyPaid)
}

func TestNewCommissionRejectsBadInput(t *testing.T) {
	_, err := NewCommission("", "item-1", 1, 1000, 200)
	assert.ErrorIs(t, err, ErrInvalidCommissionID)

	_, err = NewCommission("c-1", "", 1, 1000, 200)
	assert.ErrorIs(t, err, ErrInvalidOrderItemID)
}
