package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/services"
	"go.uber.org/zap"
)

const defaultLeaderboardLimit = 100

type ReferralHandler struct {
	referralService *services.ReferralService
	log             *zap.Logger
}

func NewReferralHandler(referralService *services.ReferralService, log *zap.Logger) *ReferralHandler {
	return &ReferralHandler{referralService: referralService, log: log}
}

func (h *ReferralHandler) Stats(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return apperr.Validation("Username parameter required")
	}

	stats, err := h.referralService.Stats(c.Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *ReferralHandler) Leaderboard(c *fiber.Ctx) error {
	limit := defaultLeaderboardLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	board, err := h.referralService.Leaderboard(c.Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(board)
}

func (h *ReferralHandler) Verify(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperr.Validation("User ID parameter required")
	}

	result, err := h.referralService.Verify(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
