package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/solodev/soloquest/internal/domain/user"
)

const uniqueViolation = "23505"

func (b *Backend) GetUsers(ctx context.Context) ([]user.User, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT id, email, password_hash, name, role, created_at, updated_at
		 FROM users
		 ORDER BY created_at ASC`)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	output := make([]user.User, 0)

	for rows.Next() {
		var u user.User

		err = rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)

		if err != nil {
			return nil, err
		}

		output = append(output, u)
	}

	return output, rows.Err()
}

func (b *Backend) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return b.getUser(ctx, `WHERE id = $1`, id)
}

func (b *Backend) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return b.getUser(ctx, `WHERE lower(email) = lower($1)`, email)
}

func (b *Backend) getUser(ctx context.Context, where string, arg any) (user.User, error) {
	var u user.User

	err := b.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, name, role, created_at, updated_at
		 FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (b *Backend) InsertUser(ctx context.Context, u user.User) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.CreatedAt, u.UpdatedAt)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return user.ErrEmailTaken
	}

	return err
}

func (b *Backend) SaveUser(ctx context.Context, u user.User) error {
	tag, err := b.pool.Exec(ctx,
		`UPDATE users
		 SET email = $2,
		     password_hash = $3,
		     name = $4,
		     role = $5,
		     updated_at = $6
		 WHERE id = $1`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrEmailTaken
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (b *Backend) DeleteUser(ctx context.Context, id string) (bool, error) {
	tag, err := b.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)

	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (b *Backend) CountUsers(ctx context.Context) (int, error) {
	var n int

	err := b.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)

	return n, err
}
