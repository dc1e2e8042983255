package cart

import (
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// UseCase reconciles cart quantity changes against authoritative stock.
// The check is best-effort (check-then-act); order placement re-validates
// with a conditional decrement.
type UseCase struct {
	products repository.ProductRepository
}

// NewUseCase builds the cart use case.
func NewUseCase(products repository.ProductRepository) *UseCase {
	return &UseCase{products: products}
}

// Reconcile applies a requested quantity for a product. The product is
// re-fetched from the store: client-cached stock is never trusted. On any
// failure the cart is left unmodified.
func (uc *UseCase) Reconcile(store *Store, productID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductUnavailable
	}
	if quantity > product.CountInStock {
		return domain.ErrInsufficientStock
	}
	store.setItem(snapshot(product, quantity))
	return nil
}

// Add is the add-to-cart path: an existing line item is bumped by one,
// otherwise the item enters with quantity 1. Same stock validation as
// Reconcile.
func (uc *UseCase) Add(store *Store, productID string) error {
	quantity := 1
	if existing, ok := store.find(productID); ok {
		quantity = existing.Quantity + 1
	}
	return uc.Reconcile(store, productID, quantity)
}

// snapshot freezes the product fields a line item carries.
func snapshot(p *entity.Product, quantity int) entity.LineItem {
	return entity.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  quantity,
	}
}
