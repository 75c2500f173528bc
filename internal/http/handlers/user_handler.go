package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/http/dto"
	"github.com/paylink/backend/internal/services"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *services.UserService
	log         *zap.Logger
}

func NewUserHandler(userService *services.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// Register creates the user bound to a wallet, or returns the existing one.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}

	res, err := h.userService.Register(c.Context(), req.Username, req.Wallet, req.ReferrerUsername)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.IsNew {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.RegisterUserResponse{
		ID:               res.User.ID.String(),
		Username:         res.User.Username,
		Wallet:           res.User.Wallet,
		ReferrerUsername: res.User.ReferrerUsername,
		IsNew:            res.IsNew,
	})
}

func (h *UserHandler) GetByWallet(c *fiber.Ctx) error {
	wallet := c.Query("wallet")
	if wallet == "" {
		return apperr.Validation("Wallet parameter required")
	}

	user, err := h.userService.GetByWallet(c.Context(), wallet)
	if err != nil {
		return err
	}
	return c.JSON(user)
}
