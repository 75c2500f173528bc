package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/http/dto"
	"github.com/paylink/backend/internal/services"
	"go.uber.org/zap"
)

type LinkHandler struct {
	linkService *services.LinkService
	log         *zap.Logger
}

func NewLinkHandler(linkService *services.LinkService, log *zap.Logger) *LinkHandler {
	return &LinkHandler{linkService: linkService, log: log}
}

func (h *LinkHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	link, err := h.linkService.Create(c.Context(), services.CreateLinkInput{
		UserID:     req.UserID,
		Username:   req.Username,
		Recipient:  req.Recipient,
		Amount:     req.Amount,
		Message:    req.Message,
		CustomSlug: req.CustomSlug,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateLinkResponse{
		ID:   link.ID.String(),
		Slug: link.Slug,
	})
}

func (h *LinkHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return apperr.Validation("User ID parameter required")
	}

	links, err := h.linkService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(links)
}

// Get resolves a link by primary id or slug and returns the complete record,
// payment-status fields included, so clients can render already-paid states.
func (h *LinkHandler) Get(c *fiber.Ctx) error {
	link, err := h.linkService.Resolve(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(link)
}

func (h *LinkHandler) Pay(c *fiber.Ctx) error {
	var req dto.PayLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	link, err := h.linkService.MarkPaid(c.Context(), c.Params("id"), req.TransactionHash)
	if err != nil {
		return err
	}
	return c.JSON(dto.PayLinkResponse{Success: true, Data: link})
}
