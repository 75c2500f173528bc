package dto

type RegisterUserRequest struct {
	Username         string `json:"username"`
	Wallet           string `json:"wallet"`
	ReferrerUsername string `json:"referrer_username,omitempty"`
}

type CreateLinkRequest struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	Recipient  string `json:"recipient"`
	Amount     string `json:"amount"` // decimal as string
	Message    string `json:"message,omitempty"`
	CustomSlug string `json:"customSlug,omitempty"`
}

type PayLinkRequest struct {
	TransactionHash string `json:"transactionHash"`
}

type PresalePurchaseRequest struct {
	WalletAddress        string   `json:"walletAddress"`
	AllocationPercentage float64  `json:"allocationPercentage"`
	TokenAmount          int64    `json:"tokenAmount"`
	SolAmount            *float64 `json:"solAmount,omitempty"`
	TransactionHash      string   `json:"transactionHash,omitempty"`
}
