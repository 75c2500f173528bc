package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/models"
	"github.com/paylink/backend/internal/repositories"
	"github.com/paylink/backend/internal/solana"
	"go.uber.org/zap"
)

type LinkService struct {
	linkRepo       *repositories.LinkRepo
	rpc            *solana.Client
	verifyPayments bool
	log            *zap.Logger
}

func NewLinkService(linkRepo *repositories.LinkRepo, rpc *solana.Client, verifyPayments bool, log *zap.Logger) *LinkService {
	return &LinkService{linkRepo: linkRepo, rpc: rpc, verifyPayments: verifyPayments, log: log}
}

type CreateLinkInput struct {
	UserID     string
	Username   string
	Recipient  string
	Amount     string
	Message    string
	CustomSlug string
}

func (s *LinkService) Create(ctx context.Context, in CreateLinkInput) (*models.Link, error) {
	if in.UserID == "" || in.Username == "" || in.Recipient == "" || in.Amount == "" {
		return nil, apperr.Validation("Missing required fields")
	}
	userID, err := uuid.Parse(in.UserID)
	if err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	if !solana.IsValidAddress(in.Recipient) {
		return nil, apperr.Validation("Invalid recipient address")
	}
	if !models.IsValidAmount(in.Amount) {
		return nil, apperr.Validation("Invalid amount")
	}

	var slug *string
	if in.CustomSlug != "" {
		if !models.IsValidSlug(in.CustomSlug) {
			return nil, apperr.Validation("Invalid slug format. Use 3-50 letters, numbers, hyphen or underscore")
		}
		normalized := models.NormalizeSlug(in.CustomSlug)
		taken, err := s.linkRepo.SlugExists(ctx, normalized)
		if err != nil {
			return nil, apperr.Internal("Failed to create link", err)
		}
		if taken {
			return nil, apperr.Conflict("Slug already taken")
		}
		slug = &normalized
	}

	var message *string
	if in.Message != "" {
		message = &in.Message
	}

	l := &models.Link{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  in.Username,
		Slug:      slug,
		Recipient: in.Recipient,
		Amount:    in.Amount,
		Message:   message,
		Status:    models.LinkStatusPending,
	}
	if err := s.linkRepo.Create(ctx, l); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Slug already taken")
		}
		return nil, apperr.Internal("Failed to create link", err)
	}

	s.log.Info("link created",
		zap.String("link_id", l.ID.String()),
		zap.String("username", l.Username),
	)
	return l, nil
}

// Resolve retrieves a link by a path identifier that may be a primary id or a
// slug. UUID-shaped identifiers go straight to the primary key; everything
// else is matched against the lowercased slug, falling back to a primary-key
// lookup with the original value for UUID-shaped slugs the heuristic missed.
func (s *LinkService) Resolve(ctx context.Context, ref string) (*models.Link, error) {
	if models.IsUUIDRef(ref) {
		id, err := uuid.Parse(ref)
		if err != nil {
			return nil, apperr.NotFound("Link not found")
		}
		return s.getByID(ctx, id)
	}

	l, err := s.linkRepo.GetBySlug(ctx, models.NormalizeSlug(ref))
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.Internal("Failed to fetch link", err)
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return nil, apperr.NotFound("Link not found")
	}
	return s.getByID(ctx, id)
}

func (s *LinkService) getByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	l, err := s.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Link not found")
		}
		return nil, apperr.Internal("Failed to fetch link", err)
	}
	return l, nil
}

func (s *LinkService) ListByUser(ctx context.Context, userIDStr string) ([]models.Link, error) {
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch links", err)
	}
	if links == nil {
		links = []models.Link{}
	}
	return links, nil
}

// MarkPaid transitions a link to paid with the caller-asserted signature.
// The update trusts the caller: no pending precondition, no on-chain check
// unless payment verification is switched on. Repeated calls overwrite the
// stored signature.
func (s *LinkService) MarkPaid(ctx context.Context, ref, txHash string) (*models.Link, error) {
	if txHash == "" {
		return nil, apperr.Validation("Transaction hash is required")
	}

	l, err := s.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	if s.verifyPayments {
		exists, err := s.rpc.TransactionExists(ctx, txHash)
		if err != nil {
			return nil, apperr.Internal("Failed to verify transaction", err)
		}
		if !exists {
			return nil, apperr.Validation("Transaction not found on chain")
		}
	}

	updated, err := s.linkRepo.MarkPaid(ctx, l.ID, txHash, time.Now())
	if err != nil {
		return nil, apperr.Internal("Failed to update link status", err)
	}

	s.log.Info("link paid",
		zap.String("link_id", updated.ID.String()),
		zap.String("transaction_hash", txHash),
	)
	return updated, nil
}
