package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paylink/backend/internal/models"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure. Concurrent check-then-insert sequences rely on this as their only
// backstop.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, wallet, referrer_username)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, u.ID, u.Username, u.Wallet, u.ReferrerUsername).Scan(&u.CreatedAt)
}

func (r *UserRepo) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, wallet, referrer_username, created_at
		FROM users WHERE wallet = $1
	`, wallet).Scan(&u.ID, &u.Username, &u.Wallet, &u.ReferrerUsername, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, wallet, referrer_username, created_at
		FROM users WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Wallet, &u.ReferrerUsername, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListReferred returns every user that named a referrer at registration.
func (r *UserRepo) ListReferred(ctx context.Context) ([]models.ReferredUser, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, referrer_username, created_at
		FROM users WHERE referrer_username IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var referred []models.ReferredUser
	for rows.Next() {
		var ru models.ReferredUser
		if err := rows.Scan(&ru.ID, &ru.Username, &ru.ReferrerUsername, &ru.CreatedAt); err != nil {
			return nil, err
		}
		referred = append(referred, ru)
	}
	return referred, rows.Err()
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
