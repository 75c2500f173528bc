package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paylink/backend/internal/models"
)

type LinkRepo struct {
	pool *pgxpool.Pool
}

func NewLinkRepo(pool *pgxpool.Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

const linkColumns = `id, user_id, username, slug, recipient, amount, message,
       status, transaction_hash, paid_at, created_at`

func scanLink(row interface{ Scan(...any) error }) (*models.Link, error) {
	var l models.Link
	err := row.Scan(&l.ID, &l.UserID, &l.Username, &l.Slug, &l.Recipient, &l.Amount,
		&l.Message, &l.Status, &l.TransactionHash, &l.PaidAt, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LinkRepo) Create(ctx context.Context, l *models.Link) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO links (id, user_id, username, slug, recipient, amount, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, l.ID, l.UserID, l.Username, l.Slug, l.Recipient, l.Amount, l.Message, l.Status).Scan(&l.CreatedAt)
}

func (r *LinkRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	return scanLink(r.pool.QueryRow(ctx, `
		SELECT `+linkColumns+` FROM links WHERE id = $1
	`, id))
}

func (r *LinkRepo) GetBySlug(ctx context.Context, slug string) (*models.Link, error) {
	return scanLink(r.pool.QueryRow(ctx, `
		SELECT `+linkColumns+` FROM links WHERE slug = $1
	`, slug))
}

func (r *LinkRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM links WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

func (r *LinkRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+linkColumns+` FROM links
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.Link
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, *l)
	}
	return links, rows.Err()
}

// MarkPaid flips a link to paid and records the caller-supplied signature.
// There is deliberately no status precondition here: a second call with a
// different signature overwrites the first, matching the upstream contract.
func (r *LinkRepo) MarkPaid(ctx context.Context, id uuid.UUID, txHash string, paidAt time.Time) (*models.Link, error) {
	return scanLink(r.pool.QueryRow(ctx, `
		UPDATE links
		SET status = $1, transaction_hash = $2, paid_at = $3
		WHERE id = $4
		RETURNING `+linkColumns+`
	`, models.LinkStatusPaid, txHash, paidAt, id))
}

// PaidLinkUserIDs returns the set of users owning at least one paid link.
func (r *LinkRepo) PaidLinkUserIDs(ctx context.Context) (map[uuid.UUID]bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT user_id FROM links WHERE status = $1
	`, models.LinkStatusPaid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paid := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		paid[id] = true
	}
	return paid, rows.Err()
}

// CountPaidByUser probes for at most one paid link, which is all the verify
// endpoint reports.
func (r *LinkRepo) CountPaidByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM (
			SELECT 1 FROM links WHERE user_id = $1 AND status = $2 LIMIT 1
		) probe
	`, userID, models.LinkStatusPaid).Scan(&count)
	return count, err
}

func (r *LinkRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count)
	return count, err
}

// SumAmounts totals the requested amount across all links.
func (r *LinkRepo) SumAmounts(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::float8 FROM links`).Scan(&total)
	return total, err
}
