package memory

import (
	"context"
	"strings"

	"github.com/solodev/soloquest/internal/domain/user"
)

func (b *Backend) GetUsers(ctx context.Context) ([]user.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]user.User, len(b.users))
	copy(out, b.users)
	return out, nil
}

func (b *Backend) GetUserByID(ctx context.Context, id string) (user.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, u := range b.users {
		if u.ID == id {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (b *Backend) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, u := range b.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (b *Backend) InsertUser(ctx context.Context, u user.User) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailTaken
		}
	}

	b.users = append(b.users, u)
	return nil
}

func (b *Backend) SaveUser(ctx context.Context, u user.User) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.users {
		if b.users[i].ID == u.ID {
			b.users[i] = u
			return nil
		}
	}

	return user.ErrNotFound
}

func (b *Backend) DeleteUser(ctx context.Context, id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.users {
		if b.users[i].ID == id {
			b.users = append(b.users[:i], b.users[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (b *Backend) CountUsers(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.users), nil
}
