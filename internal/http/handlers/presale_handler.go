package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/http/dto"
	"github.com/paylink/backend/internal/services"
	"go.uber.org/zap"
)

type PresaleHandler struct {
	presaleService *services.PresaleService
	log            *zap.Logger
}

func NewPresaleHandler(presaleService *services.PresaleService, log *zap.Logger) *PresaleHandler {
	return &PresaleHandler{presaleService: presaleService, log: log}
}

func (h *PresaleHandler) Check(c *fiber.Ctx) error {
	wallet := c.Query("wallet")
	if wallet == "" {
		return apperr.Validation("Wallet address is required")
	}

	purchase, err := h.presaleService.Check(c.Context(), wallet)
	if err != nil {
		return err
	}

	resp := dto.PresaleCheckResponse{HasPurchased: purchase != nil}
	if purchase != nil {
		resp.Purchase = dto.NewPurchaseView(purchase, false)
	}
	return c.JSON(resp)
}

func (h *PresaleHandler) Purchase(c *fiber.Ctx) error {
	var req dto.PresalePurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	purchase, err := h.presaleService.Purchase(c.Context(), services.PurchaseInput{
		WalletAddress:        req.WalletAddress,
		AllocationPercentage: req.AllocationPercentage,
		TokenAmount:          req.TokenAmount,
		SolAmount:            req.SolAmount,
		TransactionHash:      req.TransactionHash,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.PresalePurchaseResponse{
		Success:  true,
		Purchase: dto.NewPurchaseView(purchase, true),
	})
}

func (h *PresaleHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.presaleService.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
