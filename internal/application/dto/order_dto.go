package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// PlaceOrderRequest is the checkout input: the cart line items and the
// payment info captured client-side. Totals are re-derived server-side and
// never trusted from the client.
type PlaceOrderRequest struct {
	Items       []entity.LineItem  `json:"items" validate:"required,min=1"`
	PaymentInfo entity.PaymentInfo `json:"payment_info"`
}

// PayOrderRequest is the capture detail returned by the payment button.
type PayOrderRequest struct {
	ID           string `json:"id" validate:"required"`
	Status       string `json:"status" validate:"required"`
	EmailAddress string `json:"email_address"`
}

// OrderResponse is the outward order shape.
type OrderResponse struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name,omitempty"` // "DELETED USER" when the account is gone
	Items           []entity.LineItem  `json:"items"`
	ShippingAddress entity.PaymentInfo `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	ItemsPrice      decimal.Decimal    `json:"items_price"`
	TaxPrice        decimal.Decimal    `json:"tax_price"`
	ShippingPrice   decimal.Decimal    `json:"shipping_price"`
	TotalPrice      decimal.Decimal    `json:"total_price"`
	IsPaid          bool               `json:"is_paid"`
	PaidAt          *time.Time         `json:"paid_at,omitempty"`
	IsDelivered     bool               `json:"is_delivered"`
	DeliveredAt     *time.Time         `json:"delivered_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderListResponse order listings (history and back-office).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
