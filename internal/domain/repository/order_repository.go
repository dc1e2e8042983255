package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// OrderRepository is the persistence port for Order (DIP).
// Orders reference their user by identifier only; a missing user must not
// break any read path.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	ListByUser(userID string) ([]*entity.Order, error)
	ListAll(limit, offset int) ([]*entity.Order, error)
}
