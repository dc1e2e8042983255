package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

var capture = entity.PaymentResult{
	ID:           "5O190127TN364715T",
	Status:       "COMPLETED",
	EmailAddress: "buyer@example.com",
}

func TestOrder_MarkPaid(t *testing.T) {
	now := time.Now()
	order := &entity.Order{}

	require.NoError(t, order.MarkPaid(capture, now))

	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, now, *order.PaidAt)
	require.NotNil(t, order.PaymentResult)
	assert.Equal(t, capture, *order.PaymentResult)
}

// TestOrder_MarkPaidTwiceFails: the paid transition is one-way; a second
// attempt fails instead of silently succeeding.
func TestOrder_MarkPaidTwiceFails(t *testing.T) {
	order := &entity.Order{}
	require.NoError(t, order.MarkPaid(capture, time.Now()))

	firstPaidAt := *order.PaidAt
	err := order.MarkPaid(capture, time.Now().Add(time.Minute))

	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Equal(t, firstPaidAt, *order.PaidAt, "the original paid timestamp must survive")
}

// TestOrder_DeliveryRequiresPayment: an unpaid order cannot be delivered.
func TestOrder_DeliveryRequiresPayment(t *testing.T) {
	order := &entity.Order{}

	err := order.MarkDelivered(time.Now())

	assert.ErrorIs(t, err, domain.ErrOrderNotPaid)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.DeliveredAt)
}

func TestOrder_MarkDelivered(t *testing.T) {
	order := &entity.Order{}
	require.NoError(t, order.MarkPaid(capture, time.Now()))

	now := time.Now()
	require.NoError(t, order.MarkDelivered(now))

	assert.True(t, order.IsDelivered)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, now, *order.DeliveredAt)
}

// TestOrder_MarkDeliveredIdempotent: repeating the delivered transition is a
// no-op that keeps the first timestamp.
func TestOrder_MarkDeliveredIdempotent(t *testing.T) {
	order := &entity.Order{}
	require.NoError(t, order.MarkPaid(capture, time.Now()))

	first := time.Now()
	require.NoError(t, order.MarkDelivered(first))
	require.NoError(t, order.MarkDelivered(first.Add(time.Hour)))

	assert.Equal(t, first, *order.DeliveredAt)
}
