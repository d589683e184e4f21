package postgres

import (
	"context"
	"errors"

	"github.com/coursehub/coursehub-backend/internal/models"
	"github.com/coursehub/coursehub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(firstName, lastName, email, hash string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO users(id, first_name, last_name, email, password_hash) VALUES($1,$2,$3,$4,$5)`,
		id, firstName, lastName, email, hash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, repository.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return r.GetByID(id)
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}
