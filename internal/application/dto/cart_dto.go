package dto

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// ReconcileCartRequest requests a line-item quantity change. The quantity is
// re-validated against authoritative stock before acceptance.
type ReconcileCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartResponse is the cart as returned to the client after a mutation.
type CartResponse struct {
	Items       []entity.LineItem  `json:"items"`
	PaymentInfo entity.PaymentInfo `json:"payment_info"`
}
