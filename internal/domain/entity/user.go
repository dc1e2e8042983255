package entity

import "time"

// Roles for User. RoleAdmin is distinguished: it grants the back-office
// and cannot be deleted through the standard delete path.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. Email is unique case-insensitively. PasswordHash is
// optional (empty for accounts created by an external identity provider).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
