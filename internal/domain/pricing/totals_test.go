package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
)

func item(price float64, qty int) entity.LineItem {
	return entity.LineItem{Price: decimal.NewFromFloat(price), Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Round2
// ──────────────────────────────────────────────────────────────────────────────

func TestRound2_HalfUpAtCentBoundary(t *testing.T) {
	assert.Equal(t, "2.35", pricing.Round2(decimal.NewFromFloat(2.345)).StringFixed(2))
	assert.Equal(t, "2.34", pricing.Round2(decimal.NewFromFloat(2.344)).StringFixed(2))
	assert.Equal(t, "2.00", pricing.Round2(decimal.NewFromInt(2)).StringFixed(2))
}

// TestRound2_Idempotent: applying Round2 twice changes nothing.
func TestRound2_Idempotent(t *testing.T) {
	values := []float64{2.345, 0.005, 110.004999, 141.5, 199.999}
	for _, v := range values {
		once := pricing.Round2(decimal.NewFromFloat(v))
		twice := pricing.Round2(once)
		assert.True(t, once.Equal(twice), "Round2 must be idempotent for %v", v)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

// TestComputeTotals_ReferenceCart: qty 3 @ $20 plus qty 1 @ $50 →
// items 110.00, shipping 15, tax 16.50, total 141.50.
func TestComputeTotals_ReferenceCart(t *testing.T) {
	totals := pricing.ComputeTotals([]entity.LineItem{
		item(20, 3),
		item(50, 1),
	})

	assert.Equal(t, "110.00", totals.ItemsPrice.StringFixed(2))
	assert.Equal(t, "15.00", totals.ShippingPrice.StringFixed(2))
	assert.Equal(t, "16.50", totals.TaxPrice.StringFixed(2))
	assert.Equal(t, "141.50", totals.TotalPrice.StringFixed(2))
}

// TestComputeTotals_FreeShippingBoundary: shipping is 0 iff the items price
// exceeds 200: exactly 200 still pays the flat rate.
func TestComputeTotals_FreeShippingBoundary(t *testing.T) {
	atBoundary := pricing.ComputeTotals([]entity.LineItem{item(200, 1)})
	assert.Equal(t, "15.00", atBoundary.ShippingPrice.StringFixed(2), "exactly 200 is not free")

	overBoundary := pricing.ComputeTotals([]entity.LineItem{item(200.01, 1)})
	assert.True(t, overBoundary.ShippingPrice.IsZero(), "over 200 ships free")
}

// TestComputeTotals_Invariant: total always equals items + shipping + tax to
// the cent, across a spread of carts.
func TestComputeTotals_Invariant(t *testing.T) {
	carts := [][]entity.LineItem{
		{},
		{item(0.99, 1)},
		{item(19.99, 3), item(0.01, 7)},
		{item(70, 2), item(90, 1)},
		{item(123.45, 4)},
	}
	for i, cart := range carts {
		totals := pricing.ComputeTotals(cart)
		sum := pricing.Round2(totals.ItemsPrice.Add(totals.ShippingPrice).Add(totals.TaxPrice))
		assert.True(t, totals.TotalPrice.Equal(sum), "cart %d: total must equal the sum of its parts", i)
	}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := pricing.ComputeTotals(nil)
	assert.True(t, totals.ItemsPrice.IsZero())
	assert.Equal(t, "15.00", totals.ShippingPrice.StringFixed(2))
	assert.True(t, totals.TaxPrice.IsZero())
	assert.Equal(t, "15.00", totals.TotalPrice.StringFixed(2))
}
