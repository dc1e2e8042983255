package cart

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

func lineItem(id string, qty int) entity.LineItem {
	return entity.LineItem{
		ProductID: id,
		Name:      "Item " + id,
		Price:     decimal.NewFromInt(10),
		Quantity:  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Save / Load: the cookie contract
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore()
	store.setItem(lineItem("p1", 2))
	store.SetPaymentInfo(entity.PaymentInfo{
		Address:       "123 Main St",
		City:          "Springfield",
		PaymentMethod: "PayPal",
	})

	cookie, err := store.Save()
	require.NoError(t, err)
	require.NotEmpty(t, cookie)

	restored := NewStore()
	require.NoError(t, restored.Load(cookie))

	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "PayPal", restored.PaymentInfo().PaymentMethod)
}

func TestStore_LoadEmptyCookie(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(""))
	assert.Empty(t, store.Items())
}

// TestStore_LoadGarbageIsDiscarded: a malformed cookie degrades to an empty
// cart instead of failing the request.
func TestStore_LoadGarbageIsDiscarded(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load("not-base64!!"))
	assert.Empty(t, store.Items())

	require.NoError(t, store.Load("bm90LWpzb24="))
	assert.Empty(t, store.Items())
}

// TestStore_LoadExpiredPayload: a cookie saved longer ago than the idle
// window loads as an empty cart.
func TestStore_LoadExpiredPayload(t *testing.T) {
	saved := NewStore()
	saved.setItem(lineItem("p1", 1))
	cookie, err := saved.Save()
	require.NoError(t, err)

	later := time.Now().Add(61 * time.Minute)
	restored := NewStore(withClock(func() time.Time { return later }))
	require.NoError(t, restored.Load(cookie))

	assert.Empty(t, restored.Items(), "a stale cart must not be restored")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutation helpers
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_RemoveItem(t *testing.T) {
	store := NewStore()
	store.setItem(lineItem("p1", 1))
	store.setItem(lineItem("p2", 2))

	store.Remove("p1")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}

func TestStore_RemoveUnknownIsNoop(t *testing.T) {
	store := NewStore()
	store.setItem(lineItem("p1", 1))

	store.Remove("ghost")

	assert.Len(t, store.Items(), 1)
}

// TestStore_ResetItemsKeepsPaymentInfo: after checkout only the line items
// clear; the address stays for a follow-up order.
func TestStore_ResetItemsKeepsPaymentInfo(t *testing.T) {
	store := NewStore()
	store.setItem(lineItem("p1", 1))
	store.SetPaymentInfo(entity.PaymentInfo{PaymentMethod: "PayPal"})

	store.ResetItems()

	assert.Empty(t, store.Items())
	assert.Equal(t, "PayPal", store.PaymentInfo().PaymentMethod)
}

func TestStore_ClearWipesEverything(t *testing.T) {
	store := NewStore()
	store.setItem(lineItem("p1", 1))
	store.SetPaymentInfo(entity.PaymentInfo{PaymentMethod: "PayPal"})

	store.Clear()

	assert.Empty(t, store.Items())
	assert.True(t, store.PaymentInfo().IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Idle timeout
// ──────────────────────────────────────────────────────────────────────────────

// TestStore_IdleTimeoutClearsCart: after the idle window without a Touch,
// the warning fires first and then the cart clears.
func TestStore_IdleTimeoutClearsCart(t *testing.T) {
	var warned, expired atomic.Bool
	store := NewStore(
		WithIdleTimeout(60*time.Millisecond, 30*time.Millisecond),
		WithCallbacks(
			func() { warned.Store(true) },
			func() { expired.Store(true) },
		),
	)
	store.setItem(lineItem("p1", 1))
	store.Touch()

	assert.Eventually(t, expired.Load, time.Second, 5*time.Millisecond)
	assert.True(t, warned.Load(), "the warning must fire before expiry")
	assert.Empty(t, store.Items())
}

// TestStore_TouchReschedules: each Touch cancels and re-arms the task, so
// an active session never expires.
func TestStore_TouchReschedules(t *testing.T) {
	var expired atomic.Bool
	store := NewStore(
		WithIdleTimeout(80*time.Millisecond, 20*time.Millisecond),
		WithCallbacks(nil, func() { expired.Store(true) }),
	)
	store.setItem(lineItem("p1", 1))

	for i := 0; i < 4; i++ {
		store.Touch()
		time.Sleep(40 * time.Millisecond)
	}
	assert.False(t, expired.Load(), "touching within the window must keep the cart alive")

	store.Stop()
}

// TestStore_EmptyCartDoesNotArmTimers: nothing to lose, nothing scheduled.
func TestStore_EmptyCartDoesNotArmTimers(t *testing.T) {
	var expired atomic.Bool
	store := NewStore(
		WithIdleTimeout(30*time.Millisecond, 10*time.Millisecond),
		WithCallbacks(nil, func() { expired.Store(true) }),
	)

	store.Touch()
	time.Sleep(80 * time.Millisecond)

	assert.False(t, expired.Load())
}
