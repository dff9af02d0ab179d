package serverutils

import (
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs method, path and body of every request and always
// hands over to the next handler. Errors from the chain are translated here
// so the completion entry carries the final status.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		log.Info("HTTP", "Incoming request", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"body":   string(ctx.Body()),
		})

		if err := ctx.Next(); err != nil {
			if herr := ctx.App().ErrorHandler(ctx, err); herr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Debug("HTTP", "Request completed", map[string]interface{}{
			"method":  ctx.Method(),
			"path":    ctx.Path(),
			"status":  ctx.Response().StatusCode(),
			"latency": time.Since(start).String(),
		})
		return nil
	}
}

// UnknownEndpoint must be registered after every route.
func UnknownEndpoint(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: MsgUnknownEndpoint})
}
