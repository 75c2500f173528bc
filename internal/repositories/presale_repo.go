package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paylink/backend/internal/models"
)

type PresaleRepo struct {
	pool *pgxpool.Pool
}

func NewPresaleRepo(pool *pgxpool.Pool) *PresaleRepo {
	return &PresaleRepo{pool: pool}
}

func (r *PresaleRepo) Create(ctx context.Context, p *models.PresalePurchase) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO presale_purchases (id, wallet_address, allocation_percentage, token_amount, sol_amount, transaction_hash, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, p.ID, p.WalletAddress, p.AllocationPercentage, p.TokenAmount, p.SolAmount,
		p.TransactionHash, p.Status).Scan(&p.CreatedAt)
}

func (r *PresaleRepo) GetByWallet(ctx context.Context, wallet string) (*models.PresalePurchase, error) {
	var p models.PresalePurchase
	err := r.pool.QueryRow(ctx, `
		SELECT id, wallet_address, allocation_percentage::float8, token_amount, sol_amount, transaction_hash, status, created_at
		FROM presale_purchases WHERE wallet_address = $1
	`, wallet).Scan(&p.ID, &p.WalletAddress, &p.AllocationPercentage, &p.TokenAmount,
		&p.SolAmount, &p.TransactionHash, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type PresaleStats struct {
	TotalSold         int64   `json:"totalSold"`
	TotalParticipants int64   `json:"totalParticipants"`
	TotalSolRaised    float64 `json:"totalSolRaised"`
}

// Stats aggregates confirmed purchases only.
func (r *PresaleRepo) Stats(ctx context.Context) (*PresaleStats, error) {
	var s PresaleStats
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(token_amount), 0),
		       COUNT(*),
		       COALESCE(SUM(sol_amount), 0)::float8
		FROM presale_purchases WHERE status = $1
	`, models.PresaleStatusConfirmed).Scan(&s.TotalSold, &s.TotalParticipants, &s.TotalSolRaised)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
