package serverutils

import (
	"errors"

	"officehub-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware renders errors returned by handlers as JSON.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

// ErrorHandler is also usable as fiber.Config.ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code, message := StatusFor(err)

	var verr *ValidationError
	if errors.As(err, &verr) {
		return ctx.Status(code).JSON(ErrorResponseWithData(code, message, verr.Fields))
	}
	return ctx.Status(code).JSON(ErrorResponse(code, message))
}

// StatusFor maps domain errors to an HTTP status and client-facing message.
// Persistence and unknown errors are not echoed back.
func StatusFor(err error) (int, string) {
	var fiberErr *fiber.Error
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, "Validation failed"
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound, "Trash record not found"
	case errors.Is(err, apperror.ErrUnderlyingEntityMissing):
		return fiber.StatusNotFound, "Item not found or already in trash"
	case errors.Is(err, apperror.ErrForbidden):
		return fiber.StatusForbidden, "Forbidden"
	case errors.Is(err, apperror.ErrUnsupportedItemType),
		errors.Is(err, apperror.ErrInvalidItemType),
		errors.Is(err, apperror.ErrInvalidPeriod):
		return fiber.StatusBadRequest, err.Error()
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
