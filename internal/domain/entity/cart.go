package entity

import "github.com/shopspring/decimal"

// LineItem is a product snapshot plus a requested quantity. Cart line items
// live client-side (cookie); order line items are frozen copies of these at
// placement time and are never re-read from Product.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// PaymentInfo is the shipping address plus the selected payment method.
// Same client-side persistence and lifecycle as the cart.
type PaymentInfo struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod string `json:"payment_method"`
}

// IsZero reports whether no payment info has been captured yet.
func (p PaymentInfo) IsZero() bool {
	return p == PaymentInfo{}
}
