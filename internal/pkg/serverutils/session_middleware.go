package serverutils

import (
	"strings"

	"compare-audius-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookieName = "compare_session"
	localsSessionUser = "session_user"
	LoginPath         = "/login"
)

// SessionVerifier validates a session token and re-checks the allow-list
type SessionVerifier interface {
	VerifySession(token string) (*dto.SessionUser, error)
}

type SessionMode int

const (
	// SessionModeAPI answers 401 {"error":"Unauthorized"}
	SessionModeAPI SessionMode = iota
	// SessionModePage redirects to the login page
	SessionModePage
)

// TokenFromRequest reads the session cookie, falling back to a bearer token
func TokenFromRequest(ctx *fiber.Ctx) string {
	if token := ctx.Cookies(SessionCookieName); token != "" {
		return token
	}
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func SessionMiddleware(verifier SessionVerifier, mode SessionMode) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := TokenFromRequest(ctx)
		if token != "" {
			if user, err := verifier.VerifySession(token); err == nil {
				ctx.Locals(localsSessionUser, user)
				return ctx.Next()
			}
		}

		if mode == SessionModePage {
			return ctx.Redirect(LoginPath, fiber.StatusFound)
		}
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Unauthorized"))
	}
}

// CurrentUser returns the identity set by SessionMiddleware, or nil
func CurrentUser(ctx *fiber.Ctx) *dto.SessionUser {
	user, _ := ctx.Locals(localsSessionUser).(*dto.SessionUser)
	return user
}
