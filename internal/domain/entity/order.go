package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain"
)

// PaymentResult is the capture detail returned by the payment collaborator
// on approval.
type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
}

// Order is created once at checkout. Line items are snapshots frozen at
// placement time. Paid and delivered are monotonic one-way transitions.
// UserID is a weak reference: deleting the user does not delete the order.
type Order struct {
	ID              string
	UserID          string
	Items           []LineItem
	ShippingAddress PaymentInfo
	PaymentMethod   string
	ItemsPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
	IsPaid          bool
	PaidAt          *time.Time
	PaymentResult   *PaymentResult
	IsDelivered     bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MarkPaid transitions the order to paid with the given capture detail.
// A second attempt fails with ErrAlreadyPaid rather than silently succeeding.
func (o *Order) MarkPaid(result PaymentResult, at time.Time) error {
	if o.IsPaid {
		return domain.ErrAlreadyPaid
	}
	o.IsPaid = true
	o.PaidAt = &at
	o.PaymentResult = &result
	return nil
}

// MarkDelivered transitions the order to delivered. Delivery requires the
// order to be paid first. Marking an already delivered order is a no-op.
func (o *Order) MarkDelivered(at time.Time) error {
	if !o.IsPaid {
		return domain.ErrOrderNotPaid
	}
	if o.IsDelivered {
		return nil
	}
	o.IsDelivered = true
	o.DeliveredAt = &at
	return nil
}
