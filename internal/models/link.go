package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Link statuses
const (
	LinkStatusPending   = "pending"
	LinkStatusPaid      = "paid"
	LinkStatusCancelled = "cancelled"
)

var (
	uuidRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	slugRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
)

type Link struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Username        string     `json:"username"`
	Slug            *string    `json:"slug,omitempty"`
	Recipient       string     `json:"recipient"`
	Amount          string     `json:"amount"` // numeric as string
	Message         *string    `json:"message,omitempty"`
	Status          string     `json:"status"`
	TransactionHash *string    `json:"transaction_hash,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsUUIDRef reports whether a path identifier should be looked up as a primary
// id rather than a slug. Matches the canonical 8-4-4-4-12 form, any case.
func IsUUIDRef(s string) bool {
	return uuidRe.MatchString(s)
}

// IsValidSlug reports whether s is an acceptable custom slug:
// 3-50 alphanumeric, underscore or hyphen characters.
func IsValidSlug(s string) bool {
	return slugRe.MatchString(s)
}

// NormalizeSlug folds a slug to its stored form. Slugs are persisted and
// matched lowercased so share URLs stay case-insensitive.
func NormalizeSlug(s string) string {
	return strings.ToLower(s)
}

// IsValidAmount reports whether s is a positive, finite decimal. ParseFloat
// accepts "NaN" and "Inf", and a single NaN row poisons every SUM over the
// amount column, so non-finite values are rejected here.
func IsValidAmount(s string) bool {
	amt, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(amt) && !math.IsInf(amt, 0) && amt > 0
}
