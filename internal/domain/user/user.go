package user

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Masked returns a copy safe for any read path: the hash is blanked so
// it can never leak even through reflection-based encoders.
func (u User) Masked() User {
	u.PasswordHash = ""
	return u
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=1,max=120"`
	Role     string `json:"role" binding:"required,oneof=admin user"`
}

// Patch payload: nil keeps the existing value. A supplied password is
// re-hashed by the facade before it reaches a backend.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=120"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
}

func (u *User) ApplyUpdate(req UpdateUserRequest, passwordHash string, now time.Time) {
	if req.Email != nil {
		u.Email = *req.Email
	}
	if passwordHash != "" {
		u.PasswordHash = passwordHash
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	u.UpdatedAt = now
}
