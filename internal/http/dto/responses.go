package dto

import (
	"time"

	"github.com/paylink/backend/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type RegisterUserResponse struct {
	ID               string  `json:"id"`
	Username         string  `json:"username"`
	Wallet           string  `json:"wallet"`
	ReferrerUsername *string `json:"referrer_username,omitempty"`
	IsNew            bool    `json:"isNew"`
}

type CreateLinkResponse struct {
	ID   string  `json:"id"`
	Slug *string `json:"slug,omitempty"`
}

type PayLinkResponse struct {
	Success bool         `json:"success"`
	Data    *models.Link `json:"data"`
}

// PurchaseView is the camelCase purchase payload shared by the presale
// check and purchase endpoints.
type PurchaseView struct {
	ID                   string    `json:"id,omitempty"`
	AllocationPercentage float64   `json:"allocationPercentage"`
	TokenAmount          int64     `json:"tokenAmount"`
	Status               string    `json:"status"`
	TransactionHash      *string   `json:"transactionHash"`
	CreatedAt            time.Time `json:"createdAt"`
}

func NewPurchaseView(p *models.PresalePurchase, includeID bool) *PurchaseView {
	v := &PurchaseView{
		AllocationPercentage: p.AllocationPercentage,
		TokenAmount:          p.TokenAmount,
		Status:               p.Status,
		TransactionHash:      p.TransactionHash,
		CreatedAt:            p.CreatedAt,
	}
	if includeID {
		v.ID = p.ID.String()
	}
	return v
}

type PresaleCheckResponse struct {
	HasPurchased bool          `json:"hasPurchased"`
	Purchase     *PurchaseView `json:"purchase"`
}

type PresalePurchaseResponse struct {
	Success  bool          `json:"success"`
	Purchase *PurchaseView `json:"purchase"`
}

type SiteStatsResponse struct {
	Users             int64   `json:"users"`
	Links             int64   `json:"links"`
	TotalRequestedSol float64 `json:"totalRequestedSol"`
}

type SolPriceResponse struct {
	Price float64 `json:"price"`
}
