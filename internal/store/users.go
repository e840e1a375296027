package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/solodev/soloquest/internal/domain/user"
	"github.com/solodev/soloquest/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthResponse is what a successful login returns: the user with the
// hash masked, plus a signed session token.
type AuthResponse struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

func (s *Store) newUser(req user.CreateUserRequest) (user.User, error) {
	hash, err := security.HashPassword(req.Password)

	if err != nil {
		return user.User{}, err
	}

	now := time.Now().UTC()

	return user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *Store) GetUsers(ctx context.Context) ([]user.User, error) {
	var out []user.User

	_, err := s.run(ctx, "get_users", func(b Backend) error {
		var err error
		out, err = b.GetUsers(ctx)
		return err
	})

	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i] = out[i].Masked()
	}
	return out, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var out user.User

	_, err := s.run(ctx, "get_user", func(b Backend) error {
		var err error
		out, err = b.GetUserByID(ctx, id)
		return err
	})

	return out.Masked(), err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var out user.User

	_, err := s.run(ctx, "get_user_by_email", func(b Backend) error {
		var err error
		out, err = b.GetUserByEmail(ctx, email)
		return err
	})

	return out.Masked(), err
}

func (s *Store) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	u, err := s.newUser(req)

	if err != nil {
		return user.User{}, err
	}

	_, err = s.run(ctx, "create_user", func(b Backend) error {
		return b.InsertUser(ctx, u)
	})

	if err != nil {
		return user.User{}, err
	}

	return u.Masked(), nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, error) {
	now := time.Now().UTC()

	// re-hash only when a new password was supplied
	var hash string

	if req.Password != nil {
		var err error
		hash, err = security.HashPassword(*req.Password)

		if err != nil {
			return user.User{}, err
		}
	}

	var out user.User

	_, err := s.run(ctx, "update_user", func(b Backend) error {
		u, err := b.GetUserByID(ctx, id)

		if err != nil {
			return err
		}

		u.ApplyUpdate(req, hash, now)

		if err := b.SaveUser(ctx, u); err != nil {
			return err
		}

		out = u
		return nil
	})

	if err != nil {
		return user.User{}, err
	}

	return out.Masked(), nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	var removed bool

	_, err := s.run(ctx, "delete_user", func(b Backend) error {
		var err error
		removed, err = b.DeleteUser(ctx, id)
		return err
	})

	return removed, err
}

// Login verifies the credentials and issues a session token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *Store) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var found user.User

	_, err := s.run(ctx, "login", func(b Backend) error {
		var err error
		found, err = b.GetUserByEmail(ctx, email)
		return err
	})

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthResponse{}, ErrInvalidCredentials
		}
		return AuthResponse{}, err
	}

	if err := security.CheckPassword(found.PasswordHash, password); err != nil {
		return AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(found.ID, found.Email, found.Role)

	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: found.Masked(), Token: token}, nil
}
