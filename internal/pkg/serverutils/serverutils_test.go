package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/apperror"
	"compare-audius-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) VerifySession(token string) (*dto.SessionUser, error) {
	if token == "good" {
		return &dto.SessionUser{Id: "1", Email: "dev@audius.co"}, nil
	}
	return nil, apperror.Unauthorized()
}

func decodeError(t *testing.T, body io.Reader) string {
	t.Helper()
	var out ErrorBody
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out.Error
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&dto.CreatePlatformRequest{Name: "Tidal", Slug: "tidal", Logo: "x"}))

	err := ValidateRequest(&dto.CreatePlatformRequest{Slug: "tidal", Logo: "x"})
	assert.EqualError(t, err, "name is required")

	err = ValidateRequest(&dto.CreatePlatformRequest{Name: "Tidal", Slug: "Tidal Music", Logo: "x"})
	assert.EqualError(t, err, "slug must contain only lowercase letters, numbers and hyphens")

	err = ValidateRequest(&dto.BulkUpsertComparisonsRequest{Items: []dto.ComparisonItem{
		{PlatformId: "p", FeatureId: "f", Status: "maybe"},
	}})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "must be one of: yes, no, partial, custom")
}

func TestIsSlug(t *testing.T) {
	assert.True(t, IsSlug("apple-music"))
	assert.True(t, IsSlug("tidal2"))
	assert.False(t, IsSlug("-tidal"))
	assert.False(t, IsSlug("tidal--music"))
	assert.False(t, IsSlug("Tidal"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 404, StatusFor(&apperror.UnknownCompetitorError{Slug: "x"}))
	assert.Equal(t, 409, StatusFor(&apperror.DuplicateSlugError{Resource: "feature"}))
	assert.Equal(t, 400, StatusFor(apperror.Validation("bad")))
	assert.Equal(t, 401, StatusFor(apperror.Unauthorized()))
	assert.Equal(t, 500, StatusFor(&apperror.AudiusNotFoundError{}))
	assert.Equal(t, 413, StatusFor(fiber.ErrRequestEntityTooLarge))
	assert.Equal(t, 500, StatusFor(errors.New("boom")))
}

func newErrorApp() *fiber.App {
	app := fiber.New()
	renderPage := func(ctx *fiber.Ctx, status int, message string) error {
		return ctx.Status(status).SendString("page: " + message)
	}
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger(), renderPage))
	fail := func(ctx *fiber.Ctx) error { return apperror.NotFound("Platform not found") }
	app.Get("/api/platforms/x", fail)
	app.Get("/x", fail)
	app.Get("/api/boom", func(ctx *fiber.Ctx) error { return errors.New("pq: connection refused") })
	return app
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/platforms/x", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Platform not found", decodeError(t, resp.Body))

	resp, err = app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "page: Platform not found", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal server error", decodeError(t, resp.Body))
}

func TestSessionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/api/me", SessionMiddleware(stubVerifier{}, SessionModeAPI), func(ctx *fiber.Ctx) error {
		return ctx.JSON(CurrentUser(ctx))
	})
	app.Get("/admin", SessionMiddleware(stubVerifier{}, SessionModePage), func(ctx *fiber.Ctx) error {
		return ctx.SendString("dashboard")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "Unauthorized", decodeError(t, resp.Body))

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, LoginPath, resp.Header.Get("Location"))

	req = httptest.NewRequest("GET", "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
