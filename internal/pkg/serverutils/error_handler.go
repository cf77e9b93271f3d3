package serverutils

import (
	"strings"

	"compare-audius-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorPageRenderer writes an HTML error page for non-API routes
type ErrorPageRenderer func(ctx *fiber.Ctx, status int, message string) error

func isAPIRequest(ctx *fiber.Ctx) bool {
	return strings.HasPrefix(ctx.Path(), "/api/") || ctx.Path() == "/api"
}

// ErrorHandlerMiddleware turns errors returned by handlers into responses:
// {"error": msg} under /api, an HTML page elsewhere. Server-side failures
// are logged with their full chain and shown to clients generically.
func ErrorHandlerMiddleware(log logger.ILogger, renderPage ErrorPageRenderer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := StatusFor(err)
		message := MessageFor(err)

		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		if isAPIRequest(ctx) || renderPage == nil {
			return ctx.Status(status).JSON(ErrorResponse(message))
		}
		return renderPage(ctx, status, message)
	}
}
