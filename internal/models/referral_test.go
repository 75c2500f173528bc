package models

import (
	"testing"

	"github.com/google/uuid"
)

func fixtureReferrals() ([]ReferredUser, map[uuid.UUID]bool) {
	bob := uuid.New()
	carol := uuid.New()
	dave := uuid.New()
	erin := uuid.New()

	referred := []ReferredUser{
		{ID: bob, Username: "bob", ReferrerUsername: "alice"},
		{ID: carol, Username: "carol", ReferrerUsername: "Alice"}, // mixed case folds to alice
		{ID: dave, Username: "dave", ReferrerUsername: "mallory"},
		{ID: erin, Username: "erin", ReferrerUsername: "ghost"}, // referrer has no user row
	}
	paid := map[uuid.UUID]bool{
		bob:  true,
		dave: true,
	}
	return referred, paid
}

func TestTallyReferrers(t *testing.T) {
	referred, paid := fixtureReferrals()
	scores := TallyReferrers(referred, paid)

	if len(scores) != 3 {
		t.Fatalf("expected 3 referrers, got %d", len(scores))
	}

	tests := []struct {
		username string
		total    int
		verified int
		points   int
	}{
		{"alice", 2, 1, 4},
		{"mallory", 1, 1, 3},
		{"ghost", 1, 0, 1}, // dangling referrer still scores
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			s, ok := scores[tt.username]
			if !ok {
				t.Fatalf("referrer %q missing from tally", tt.username)
			}
			if s.TotalReferrals != tt.total || s.VerifiedReferrals != tt.verified || s.Points != tt.points {
				t.Errorf("got total=%d verified=%d points=%d, want %d/%d/%d",
					s.TotalReferrals, s.VerifiedReferrals, s.Points, tt.total, tt.verified, tt.points)
			}
		})
	}
}

func TestPointsFormula(t *testing.T) {
	referred, paid := fixtureReferrals()
	for username, s := range TallyReferrers(referred, paid) {
		want := s.TotalReferrals + 2*s.VerifiedReferrals
		if s.Points != want {
			t.Errorf("%s: points = %d, want totalReferrals + 2*verifiedReferrals = %d", username, s.Points, want)
		}
	}
}

func TestLeaderboardOrderingAndRanks(t *testing.T) {
	referred, paid := fixtureReferrals()
	board := Leaderboard(TallyReferrers(referred, paid), 100)

	wantOrder := []string{"alice", "mallory", "ghost"}
	if len(board) != len(wantOrder) {
		t.Fatalf("leaderboard size = %d, want %d", len(board), len(wantOrder))
	}
	for i, want := range wantOrder {
		if board[i].Username != want {
			t.Errorf("position %d = %q, want %q", i, board[i].Username, want)
		}
		if board[i].Rank != i+1 {
			t.Errorf("position %d rank = %d, want %d", i, board[i].Rank, i+1)
		}
	}
}

func TestLeaderboardTieBreakIsDeterministic(t *testing.T) {
	// Two referrers with identical points must always order by username.
	a, b := uuid.New(), uuid.New()
	referred := []ReferredUser{
		{ID: a, Username: "u1", ReferrerUsername: "zeta"},
		{ID: b, Username: "u2", ReferrerUsername: "alpha"},
	}
	for i := 0; i < 10; i++ {
		board := Leaderboard(TallyReferrers(referred, nil), 100)
		if board[0].Username != "alpha" || board[1].Username != "zeta" {
			t.Fatalf("tie-break not deterministic: got %q, %q", board[0].Username, board[1].Username)
		}
	}
}

func TestLeaderboardLimit(t *testing.T) {
	referred := []ReferredUser{}
	for i := 0; i < 5; i++ {
		referred = append(referred, ReferredUser{ID: uuid.New(), Username: "u", ReferrerUsername: string(rune('a' + i))})
	}
	board := Leaderboard(TallyReferrers(referred, nil), 3)
	if len(board) != 3 {
		t.Errorf("limit 3 returned %d entries", len(board))
	}
}

func TestReferrerRank(t *testing.T) {
	referred, paid := fixtureReferrals()
	scores := TallyReferrers(referred, paid)

	if r := ReferrerRank(scores, "alice"); r == nil || *r != 1 {
		t.Errorf("alice rank = %v, want 1", r)
	}
	if r := ReferrerRank(scores, "MALLORY"); r == nil || *r != 2 {
		t.Errorf("mallory rank = %v, want 2", r)
	}
	if r := ReferrerRank(scores, "ghost"); r == nil || *r != 3 {
		t.Errorf("ghost rank = %v, want 3", r)
	}
	// Not a referrer at all.
	if r := ReferrerRank(scores, "bob"); r != nil {
		t.Errorf("bob rank = %d, want nil", *r)
	}
}

// The stats endpoint and the leaderboard endpoint both run through
// TallyReferrers, so their numbers must agree on identical data.
func TestStatsLeaderboardParity(t *testing.T) {
	referred, paid := fixtureReferrals()
	scores := TallyReferrers(referred, paid)
	board := Leaderboard(scores, 100)

	for _, entry := range board {
		s, ok := scores[entry.Username]
		if !ok {
			t.Fatalf("leaderboard entry %q missing from tally", entry.Username)
		}
		if entry.Points != s.Points || entry.TotalReferrals != s.TotalReferrals || entry.VerifiedReferrals != s.VerifiedReferrals {
			t.Errorf("%s: leaderboard %+v disagrees with tally %+v", entry.Username, entry, *s)
		}
	}
}

func TestVerifiedCountingFollowsPaidLinks(t *testing.T) {
	id := uuid.New()
	referred := []ReferredUser{{ID: id, Username: "bob", ReferrerUsername: "alice"}}

	before := TallyReferrers(referred, map[uuid.UUID]bool{})
	if s := before["alice"]; s.TotalReferrals != 1 || s.VerifiedReferrals != 0 || s.Points != 1 {
		t.Errorf("before paid link: %+v", *s)
	}

	after := TallyReferrers(referred, map[uuid.UUID]bool{id: true})
	if s := after["alice"]; s.TotalReferrals != 1 || s.VerifiedReferrals != 1 || s.Points != 3 {
		t.Errorf("after paid link: %+v", *s)
	}
}
