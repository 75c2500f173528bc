package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/http/dto"
	"github.com/paylink/backend/internal/pricefeed"
	"github.com/paylink/backend/internal/repositories"
	"go.uber.org/zap"
)

type StatsHandler struct {
	userRepo *repositories.UserRepo
	linkRepo *repositories.LinkRepo
	prices   *pricefeed.Service
	log      *zap.Logger
}

func NewStatsHandler(userRepo *repositories.UserRepo, linkRepo *repositories.LinkRepo, prices *pricefeed.Service, log *zap.Logger) *StatsHandler {
	return &StatsHandler{userRepo: userRepo, linkRepo: linkRepo, prices: prices, log: log}
}

func (h *StatsHandler) Site(c *fiber.Ctx) error {
	users, err := h.userRepo.Count(c.Context())
	if err != nil {
		return apperr.Internal("Failed to compute users count", err)
	}
	links, err := h.linkRepo.Count(c.Context())
	if err != nil {
		return apperr.Internal("Failed to compute links count", err)
	}
	totalSol, err := h.linkRepo.SumAmounts(c.Context())
	if err != nil {
		return apperr.Internal("Failed to compute total requested SOL", err)
	}

	return c.JSON(dto.SiteStatsResponse{
		Users:             users,
		Links:             links,
		TotalRequestedSol: totalSol,
	})
}

func (h *StatsHandler) SolPrice(c *fiber.Ctx) error {
	price, err := h.prices.Price(c.Context())
	if err != nil {
		return apperr.Internal("Failed to fetch SOL price", err)
	}
	return c.JSON(dto.SolPriceResponse{Price: price})
}
