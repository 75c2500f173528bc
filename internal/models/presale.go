package models

import (
	"time"

	"github.com/google/uuid"
)

// Presale purchase statuses
const (
	PresaleStatusPending   = "pending"
	PresaleStatusConfirmed = "confirmed"
)

// Allocation tiers offered in the presale, percent of total supply.
var ValidAllocations = []float64{0.25, 0.5, 1}

func IsValidAllocation(pct float64) bool {
	for _, a := range ValidAllocations {
		if pct == a {
			return true
		}
	}
	return false
}

type PresalePurchase struct {
	ID                   uuid.UUID `json:"id"`
	WalletAddress        string    `json:"wallet_address"`
	AllocationPercentage float64   `json:"allocation_percentage"`
	TokenAmount          int64     `json:"token_amount"`
	SolAmount            *float64  `json:"sol_amount,omitempty"`
	TransactionHash      *string   `json:"transaction_hash,omitempty"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}
