package serverutils

import (
	"errors"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

const (
	MsgMalformedID     = "malformatted id"
	MsgUnknownEndpoint = "unknown endpoint"
	MsgInternalError   = "internal server error"
)

func errorJSON(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// ErrorHandler maps errors returned by handlers to HTTP responses. It is the
// only place where store error categories become status codes.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var se *contract.StoreError
		if errors.As(err, &se) {
			switch se.Kind {
			case contract.KindMalformedID:
				return errorJSON(ctx, fiber.StatusBadRequest, MsgMalformedID)
			case contract.KindValidation:
				return errorJSON(ctx, fiber.StatusBadRequest, se.Message)
			case contract.KindNotFound:
				ctx.Response().ResetBody()
				ctx.Status(fiber.StatusNotFound)
				return nil
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return errorJSON(ctx, fe.Code, MsgUnknownEndpoint)
			}
			return errorJSON(ctx, fe.Code, fe.Message)
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return errorJSON(ctx, fiber.StatusInternalServerError, MsgInternalError)
	}
}
