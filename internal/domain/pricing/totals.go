// Package pricing computes order totals from cart line items. The shipping
// threshold and tax rate are fixed business constants, not configuration.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

var (
	freeShippingOver = decimal.NewFromInt(200)
	shippingFlat     = decimal.NewFromInt(15)
	taxRate          = decimal.NewFromFloat(0.15)
)

// Totals breaks an order's price into its components.
// Invariant: Total == Round2(Items + Tax + Shipping).
type Totals struct {
	ItemsPrice    decimal.Decimal
	ShippingPrice decimal.Decimal
	TaxPrice      decimal.Decimal
	TotalPrice    decimal.Decimal
}

// Round2 rounds to two decimals with half-up rounding at the cent boundary.
// Idempotent: Round2(Round2(x)) == Round2(x).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTotals derives items/shipping/tax/total from the line items.
// Shipping is free when the items price exceeds 200, else a flat 15;
// tax is 15% of the items price.
func ComputeTotals(items []entity.LineItem) Totals {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	itemsPrice := Round2(sum)

	shippingPrice := shippingFlat
	if itemsPrice.GreaterThan(freeShippingOver) {
		shippingPrice = decimal.Zero
	}

	taxPrice := Round2(itemsPrice.Mul(taxRate))

	return Totals{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    Round2(itemsPrice.Add(shippingPrice).Add(taxPrice)),
	}
}
