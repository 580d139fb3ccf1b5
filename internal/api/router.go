package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hance08/ledger/internal/service"
	"go.uber.org/zap"
)

// NewServer builds the fiber app exposing the transfer engine.
func NewServer(svc *service.Service, logger *zap.Logger) *fiber.App {
	h := NewHandler(svc, logger)

	app := fiber.New(fiber.Config{
		AppName:               "ledger",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(h.logger),
	})

	app.Use(requestLogger(h.logger))

	app.Get("/health", h.health)

	api := app.Group("/api")
	api.Post("/executeTransaction", h.executeTransaction)
	api.Get("/accounts", h.listAccounts)
	api.Get("/accounts/:id", h.getAccount)
	api.Get("/transactions", h.listTransactions)

	return app
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		logger.Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message})
		}

		logger.Error("unhandled request error", zap.Error(err))
		return internalError(c)
	}
}
