package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Referral points: 1 per referral, +2 bonus when the referred user is
// verified (owns at least one paid link).
const (
	ReferralBasePoints     = 1
	ReferralVerifiedPoints = 2
)

// ReferredUser is the raw row a referral tally runs over: a user who named a
// referrer at registration.
type ReferredUser struct {
	ID               uuid.UUID
	Username         string
	ReferrerUsername string
	CreatedAt        time.Time
}

// ReferrerScore is the tallied total for a single referrer username.
type ReferrerScore struct {
	Rank              int    `json:"rank"`
	Username          string `json:"username"`
	TotalReferrals    int    `json:"totalReferrals"`
	VerifiedReferrals int    `json:"verifiedReferrals"`
	Points            int    `json:"points"`
}

// TallyReferrers computes per-referrer totals from raw referred-user rows.
// Keys are case-folded referrer usernames; a referrer with no user row of its
// own still gets an entry, keyed by the username string alone. Both the
// per-user stats endpoint and the leaderboard run through this single tally so
// the two can never disagree.
func TallyReferrers(referred []ReferredUser, paidUsers map[uuid.UUID]bool) map[string]*ReferrerScore {
	scores := make(map[string]*ReferrerScore)
	for _, r := range referred {
		if r.ReferrerUsername == "" {
			continue
		}
		key := strings.ToLower(r.ReferrerUsername)
		s, ok := scores[key]
		if !ok {
			s = &ReferrerScore{Username: key}
			scores[key] = s
		}
		s.TotalReferrals++
		if paidUsers[r.ID] {
			s.VerifiedReferrals++
		}
	}
	for _, s := range scores {
		s.Points = s.TotalReferrals*ReferralBasePoints + s.VerifiedReferrals*ReferralVerifiedPoints
	}
	return scores
}

// Leaderboard orders scores by points descending, breaking ties by username
// ascending so equal-points ordering is deterministic, truncates to limit and
// assigns positional ranks starting at 1.
func Leaderboard(scores map[string]*ReferrerScore, limit int) []ReferrerScore {
	board := make([]ReferrerScore, 0, len(scores))
	for _, s := range scores {
		board = append(board, *s)
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Points != board[j].Points {
			return board[i].Points > board[j].Points
		}
		return board[i].Username < board[j].Username
	})
	if limit > 0 && len(board) > limit {
		board = board[:limit]
	}
	for i := range board {
		board[i].Rank = i + 1
	}
	return board
}

// ReferrerRank returns 1 plus the number of referrers whose points strictly
// exceed the given referrer's, or nil when the username has no referrals.
func ReferrerRank(scores map[string]*ReferrerScore, username string) *int {
	s, ok := scores[strings.ToLower(username)]
	if !ok {
		return nil
	}
	rank := 1
	for _, other := range scores {
		if other.Points > s.Points {
			rank++
		}
	}
	return &rank
}
