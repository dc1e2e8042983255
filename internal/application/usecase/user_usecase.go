package usecase

import (
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// UserUseCase is the back-office user administration surface. Self-service
// registration and profile edits live in the auth use case.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List pages through all accounts.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Items:  make([]dto.UserResponse, 0, len(list)),
		Limit:  limit,
		Offset: offset,
	}
	for _, u := range list {
		out.Items = append(out.Items, *toUserResponse(u))
	}
	return out, nil
}

// GetByID fetches one account.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

// UpdateRoles replaces an account's role set. Only known roles are accepted,
// and stripping the admin role from an admin account is refused so the
// back office cannot lock itself out.
func (uc *UserUseCase) UpdateRoles(id string, in dto.UpdateUserRolesRequest) (*dto.UserResponse, error) {
	if len(in.Roles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range in.Roles {
		if r != entity.RoleUser && r != entity.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
	}
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.IsAdmin() && !hasRole(in.Roles, entity.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	u.Roles = in.Roles
	u.UpdatedAt = time.Now()
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Delete removes an account. Admin accounts are protected from deletion.
func (uc *UserUseCase) Delete(id string) error {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.IsAdmin() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
