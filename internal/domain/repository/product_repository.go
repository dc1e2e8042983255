package repository

import (
	"github.com/jhoicas/storefront-api/internal/domain/catalog"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// ProductRepository is the persistence port for Product (DIP).
// Search and Count must apply the same filter so the page window and the
// result set stay consistent.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	Search(filter catalog.Filter, limit, offset int) ([]*entity.Product, error)
	Count(filter catalog.Filter) (int, error)
	Brands() ([]string, error)
	Categories() ([]string, error)
	// DecrementStock atomically decrements stock only when enough remains
	// (count_in_stock >= quantity). Returns ErrInsufficientStock otherwise.
	DecrementStock(productID string, quantity int) error
}
