package order

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner executes fn with repositories bound to one transaction. Any error
// from fn rolls the whole transaction back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// CaptureValidator confirms a payment capture with the external payment
// collaborator before an order is marked paid.
type CaptureValidator interface {
	ValidateCapture(ctx context.Context, result entity.PaymentResult) error
}
