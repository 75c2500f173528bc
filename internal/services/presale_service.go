package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/models"
	"github.com/paylink/backend/internal/repositories"
	"github.com/paylink/backend/internal/solana"
	"go.uber.org/zap"
)

type PresaleService struct {
	presaleRepo *repositories.PresaleRepo
	log         *zap.Logger
}

func NewPresaleService(presaleRepo *repositories.PresaleRepo, log *zap.Logger) *PresaleService {
	return &PresaleService{presaleRepo: presaleRepo, log: log}
}

type PurchaseInput struct {
	WalletAddress        string
	AllocationPercentage float64
	TokenAmount          int64
	SolAmount            *float64
	TransactionHash      string
}

// Purchase records a single presale buy per wallet. The pre-insert existence
// check is racy across concurrent requests; the unique constraint on
// wallet_address converts that race into a visible conflict.
func (s *PresaleService) Purchase(ctx context.Context, in PurchaseInput) (*models.PresalePurchase, error) {
	if in.WalletAddress == "" || in.AllocationPercentage == 0 || in.TokenAmount == 0 {
		return nil, apperr.Validation("Missing required fields")
	}
	if !models.IsValidAllocation(in.AllocationPercentage) {
		return nil, apperr.Validation("Invalid allocation percentage")
	}
	if !solana.IsValidAddress(in.WalletAddress) {
		return nil, apperr.Validation("Invalid wallet address")
	}

	if _, err := s.presaleRepo.GetByWallet(ctx, in.WalletAddress); err == nil {
		return nil, apperr.Validation("Wallet has already purchased tokens")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Internal("Failed to record purchase", err)
	}

	status := models.PresaleStatusPending
	var txHash *string
	if in.TransactionHash != "" {
		status = models.PresaleStatusConfirmed
		txHash = &in.TransactionHash
	}

	p := &models.PresalePurchase{
		ID:                   uuid.New(),
		WalletAddress:        in.WalletAddress,
		AllocationPercentage: in.AllocationPercentage,
		TokenAmount:          in.TokenAmount,
		SolAmount:            in.SolAmount,
		TransactionHash:      txHash,
		Status:               status,
	}
	if err := s.presaleRepo.Create(ctx, p); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Wallet has already purchased tokens")
		}
		return nil, apperr.Internal("Failed to record purchase", err)
	}

	s.log.Info("presale purchase recorded",
		zap.String("wallet", p.WalletAddress),
		zap.Float64("allocation_pct", p.AllocationPercentage),
		zap.String("status", p.Status),
	)
	return p, nil
}

// Check returns the purchase bound to wallet, if any.
func (s *PresaleService) Check(ctx context.Context, wallet string) (*models.PresalePurchase, error) {
	p, err := s.presaleRepo.GetByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Internal("Failed to check wallet", err)
	}
	return p, nil
}

func (s *PresaleService) Stats(ctx context.Context) (*repositories.PresaleStats, error) {
	stats, err := s.presaleRepo.Stats(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch presale stats", err)
	}
	return stats, nil
}
