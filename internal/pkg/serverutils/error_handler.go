package serverutils

import (
	"errors"

	"wiccapedia-api/internal/pkg/apperror"
	"wiccapedia-api/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusCode maps an error kind to its HTTP status.
func StatusCode(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrAssetMissing):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrConstraintViolation):
		return fiber.StatusConflict
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders errors returned by handlers as ErrorResponse bodies.
// Server side failures are logged with the request id; their details never
// reach the client.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		status := StatusCode(err)

		var body ErrorResponse
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && !isAppError(err) {
			body = NewErrorResponse(fiberCode(status), fiberErr.Message)
		} else {
			body = NewErrorResponse(apperror.Code(err), apperror.Message(err))
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"status":     status,
				"request_id": requestID(ctx),
				"error":      err.Error(),
			})
		}

		return ctx.Status(status).JSON(body)
	}
}

func isAppError(err error) bool {
	var appErr *apperror.Error
	return errors.As(err, &appErr)
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	}
	if status < fiber.StatusInternalServerError {
		return "BAD_REQUEST"
	}
	return "INTERNAL_ERROR"
}
