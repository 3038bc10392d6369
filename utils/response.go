package utils

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse wraps a payload in the envelope the frontend expects.
func SuccessResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// ErrorResponse logs the underlying error to Sentry when present and replies
// with the user-facing message only.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil && status >= fiber.StatusInternalServerError {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("path", c.Path())
			scope.SetExtra("message", message)
			sentry.CaptureException(err)
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
