package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/paylink/backend/internal/apperr"
	"github.com/paylink/backend/internal/config"
	"github.com/paylink/backend/internal/http/dto"
	"github.com/paylink/backend/internal/http/handlers"
	"github.com/paylink/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewErrorHandler maps the error taxonomy onto HTTP responses with the
// {error, details?} body every endpoint shares.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			if ae.Kind == apperr.KindInternal {
				log.Error("request failed",
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			}
			return c.Status(apperr.Status(ae)).JSON(dto.ErrorResponse{Error: ae.Message, Details: ae.Details})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
	}
}

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	userHandler *handlers.UserHandler,
	linkHandler *handlers.LinkHandler,
	referralHandler *handlers.ReferralHandler,
	presaleHandler *handlers.PresaleHandler,
	statsHandler *handlers.StatsHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Accounts
	api.Post("/users", userHandler.Register)
	api.Get("/users", userHandler.GetByWallet)

	// Payment links
	api.Post("/links", linkHandler.Create)
	api.Get("/links", linkHandler.ListByUser)
	api.Get("/links/:id", linkHandler.Get)
	api.Post("/links/:id/pay", linkHandler.Pay)

	// Referrals
	api.Get("/referrals/stats", referralHandler.Stats)
	api.Get("/referrals/leaderboard", referralHandler.Leaderboard)
	api.Get("/referrals/verify", referralHandler.Verify)

	// Presale
	api.Get("/presale/check", presaleHandler.Check)
	api.Post("/presale/purchase", presaleHandler.Purchase)
	api.Get("/presale/stats", presaleHandler.Stats)

	// Aggregates
	api.Get("/stats", statsHandler.Site)
	api.Get("/sol-price", statsHandler.SolPrice)
}
