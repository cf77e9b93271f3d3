// FILE: internal/controller/auth_controller.go
// Google sign-in, logout and session endpoints
package controller

import (
	"errors"
	"net/url"
	"time"

	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	// RegisterRoutes mounts /auth on a router the session gate does not cover
	RegisterRoutes(api fiber.Router)
}

type authController struct {
	service      service.IAuthService
	secureCookie bool
}

func NewAuthController(service service.IAuthService, secureCookie bool) IAuthController {
	return &authController{service: service, secureCookie: secureCookie}
}

func (c *authController) RegisterRoutes(api fiber.Router) {
	h := api.Group("/auth")
	h.Get("/google", c.GoogleLogin)
	h.Get("/google/callback", c.GoogleCallback)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
}

// GoogleLogin redirects to the Google consent screen
// @Router /api/auth/google [get]
func (c *authController) GoogleLogin(ctx *fiber.Ctx) error {
	return ctx.Redirect(c.service.LoginURL(ctx.Query("returnTo")), fiber.StatusFound)
}

// GoogleCallback finishes sign-in and sets the session cookie
// @Router /api/auth/google/callback [get]
func (c *authController) GoogleCallback(ctx *fiber.Ctx) error {
	if ctx.Query("error") != "" {
		return ctx.Redirect(loginErrorURL("OAuthCallback"), fiber.StatusFound)
	}

	result, err := c.service.HandleCallback(ctx.UserContext(), ctx.Query("state"), ctx.Query("code"))
	if err != nil {
		if errors.Is(err, service.ErrAccessDenied) {
			return ctx.Redirect(loginErrorURL("AccessDenied"), fiber.StatusFound)
		}
		return ctx.Redirect(loginErrorURL("OAuthCallback"), fiber.StatusFound)
	}

	c.setSessionCookie(ctx, result.Token, result.ExpiresAt)
	return ctx.Redirect(result.ReturnTo, fiber.StatusFound)
}

// @Router /api/auth/logout [post]
func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.setSessionCookie(ctx, "", time.Unix(0, 0))
	return ctx.JSON(serverutils.SuccessResponse())
}

// Session returns the signed-in identity or 401
// @Router /api/auth/session [get]
func (c *authController) Session(ctx *fiber.Ctx) error {
	token := serverutils.TokenFromRequest(ctx)
	if token == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Unauthorized"))
	}
	res, err := c.service.Session(token)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Unauthorized"))
	}
	return ctx.JSON(res)
}

func (c *authController) setSessionCookie(ctx *fiber.Ctx, value string, expires time.Time) {
	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func loginErrorURL(code string) string {
	return serverutils.LoginPath + "?error=" + url.QueryEscape(code)
}
