package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/models"
	"github.com/paylink/backend/internal/repositories"
	"go.uber.org/zap"
)

// ReferralService recomputes point totals from raw rows on every call; there
// is no persisted aggregate to drift out of sync.
type ReferralService struct {
	userRepo *repositories.UserRepo
	linkRepo *repositories.LinkRepo
	log      *zap.Logger
}

func NewReferralService(userRepo *repositories.UserRepo, linkRepo *repositories.LinkRepo, log *zap.Logger) *ReferralService {
	return &ReferralService{userRepo: userRepo, linkRepo: linkRepo, log: log}
}

type ReferralEntry struct {
	Username string    `json:"username"`
	Verified bool      `json:"verified"`
	JoinedAt time.Time `json:"joinedAt"`
}

type ReferralStats struct {
	Username          string          `json:"username"`
	TotalReferrals    int             `json:"totalReferrals"`
	VerifiedReferrals int             `json:"verifiedReferrals"`
	Points            int             `json:"points"`
	Rank              *int            `json:"rank"`
	TotalReferrers    int             `json:"totalReferrers"`
	Referrals         []ReferralEntry `json:"referrals"`
}

func (s *ReferralService) Stats(ctx context.Context, username string) (*ReferralStats, error) {
	lower := strings.ToLower(username)

	user, err := s.userRepo.GetByUsername(ctx, lower)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to fetch referral stats", err)
	}

	referred, paid, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}

	scores := models.TallyReferrers(referred, paid)

	stats := &ReferralStats{
		Username:  user.Username,
		Rank:      models.ReferrerRank(scores, lower),
		Referrals: []ReferralEntry{},
	}
	if own, ok := scores[lower]; ok {
		stats.TotalReferrals = own.TotalReferrals
		stats.VerifiedReferrals = own.VerifiedReferrals
		stats.Points = own.Points
	}
	stats.TotalReferrers = len(scores)

	for _, r := range referred {
		if strings.ToLower(r.ReferrerUsername) != lower {
			continue
		}
		stats.Referrals = append(stats.Referrals, ReferralEntry{
			Username: r.Username,
			Verified: paid[r.ID],
			JoinedAt: r.CreatedAt,
		})
	}
	return stats, nil
}

func (s *ReferralService) Leaderboard(ctx context.Context, limit int) ([]models.ReferrerScore, error) {
	referred, paid, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	board := models.Leaderboard(models.TallyReferrers(referred, paid), limit)
	if board == nil {
		board = []models.ReferrerScore{}
	}
	return board, nil
}

type VerifyResult struct {
	Verified       bool `json:"verified"`
	PaidLinksCount int  `json:"paidLinksCount"`
}

func (s *ReferralService) Verify(ctx context.Context, userIDStr string) (*VerifyResult, error) {
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperr.Validation("Invalid user id")
	}
	count, err := s.linkRepo.CountPaidByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to check verification", err)
	}
	return &VerifyResult{Verified: count > 0, PaidLinksCount: count}, nil
}

func (s *ReferralService) loadRows(ctx context.Context) ([]models.ReferredUser, map[uuid.UUID]bool, error) {
	referred, err := s.userRepo.ListReferred(ctx)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to fetch referral stats", err)
	}
	paid, err := s.linkRepo.PaidLinkUserIDs(ctx)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to fetch referral stats", err)
	}
	return referred, paid, nil
}
