package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// PlaceOrderUseCase turns a cart into a persisted order. Totals are derived
// server-side from the line-item snapshots, and stock is reserved with a
// conditional decrement inside one transaction: if any line lacks stock the
// whole order rolls back.
type PlaceOrderUseCase struct {
	tx TxRunner
}

// NewPlaceOrderUseCase builds the use case.
func NewPlaceOrderUseCase(tx TxRunner) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{tx: tx}
}

// PlaceOrder validates the cart, decrements stock per line and persists the
// order with its frozen snapshots.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, userID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || item.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	totals := pricing.ComputeTotals(in.Items)
	now := time.Now()
	o := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           in.Items,
		ShippingAddress: in.PaymentInfo,
		PaymentMethod:   in.PaymentInfo.PaymentMethod,
		ItemsPrice:      totals.ItemsPrice,
		TaxPrice:        totals.TaxPrice,
		ShippingPrice:   totals.ShippingPrice,
		TotalPrice:      totals.TotalPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) error {
		for _, item := range o.Items {
			if err := productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return orderRepo.Create(o)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, ""), nil
}
