package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// UserRepository is the persistence port for User (DIP).
// Email lookups are case-insensitive.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
