package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

type User struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	Wallet           string    `json:"wallet"`
	ReferrerUsername *string   `json:"referrer_username,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// IsValidUsername reports whether s is 3-20 alphanumeric/underscore characters.
func IsValidUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// IsSelfReferral reports whether referrer names the registering user itself.
// Usernames are stored lowercased, so the comparison is case-insensitive.
func IsSelfReferral(username, referrer string) bool {
	return strings.EqualFold(username, referrer)
}
