package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"compare-audius-be/internal/bootstrap"
	"compare-audius-be/internal/config"
	"compare-audius-be/internal/dto"
	"compare-audius-be/internal/pkg/logger"
	"compare-audius-be/internal/pkg/serverutils"
	"compare-audius-be/internal/server"
	"compare-audius-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			BaseURL:            "http://localhost:3000",
			Environment:        "test",
			CorsAllowedOrigins: "http://localhost:3000",
		},
		Auth: config.AuthConfig{
			JWTSecret:      "server-test-secret",
			AllowedDomains: []string{"audius.co"},
		},
		Cache: config.CacheConfig{Driver: "memory", PageTTLSeconds: 60, ExportTTLSeconds: 60},
		Site:  config.SiteConfig{URL: "https://compare.test", Name: "Audius Compare", DefaultCompetitor: "spotify"},
	}
}

type harness struct {
	app   *fiber.App
	token string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	testutil.SeedScenario(t, factory)

	container := bootstrap.NewContainer(db, testConfig(), logger.NewNopLogger())
	t.Cleanup(container.Close)

	token, _, err := container.SessionVerifier.IssueSession(&dto.SessionUser{Id: "u1", Email: "dev@audius.co", Name: "Dev"})
	require.NoError(t, err)

	return &harness{app: server.New(testConfig(), container).GetApp(), token: token}
}

func (h *harness) do(t *testing.T, method, path, body string, authed bool) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.AddCookie(&http.Cookie{Name: serverutils.SessionCookieName, Value: h.token})
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestPublicPages(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "GET", "/spotify", "", false)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Audius vs Spotify")

	resp = h.do(t, "GET", "/", "", false)
	assert.Equal(t, 200, resp.StatusCode)

	resp = h.do(t, "GET", "/tidal", "", false)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "does not exist")

	resp = h.do(t, "GET", "/robots.txt", "", false)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Disallow: /admin")

	resp = h.do(t, "GET", "/login", "", false)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAPIRequiresSession(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/api/platforms", "/api/features", "/api/comparisons", "/api/dashboard", "/api/export/comparisons.xlsx"} {
		resp := h.do(t, "GET", path, "", false)
		assert.Equal(t, 401, resp.StatusCode, path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, readBody(t, resp), path)
	}

	resp := h.do(t, "GET", "/admin/platforms", "", false)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = h.do(t, "GET", "/api/auth/session", "", false)
	assert.Equal(t, 401, resp.StatusCode)

	resp = h.do(t, "GET", "/api/auth/session", "", true)
	assert.Equal(t, 200, resp.StatusCode)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &session))
	assert.Equal(t, "dev@audius.co", session.User.Email)
}

func TestEventsRequiresUpgrade(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "GET", "/api/events", "", false)
	assert.Equal(t, 401, resp.StatusCode)

	resp = h.do(t, "GET", "/api/events", "", true)
	assert.Equal(t, 426, resp.StatusCode)
}

func TestPlatformLifecycle(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "POST", "/api/platforms", `{"name":"Tidal","slug":"tidal","logo":"https://img.test/t.png"}`, true)
	require.Equal(t, 201, resp.StatusCode)
	var created dto.PlatformResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &created))
	assert.True(t, created.IsDraft)

	resp = h.do(t, "GET", "/tidal", "", false)
	assert.Equal(t, 404, resp.StatusCode, "drafts are not public")

	resp = h.do(t, "PUT", "/api/platforms/"+created.Id, `{"isDraft":false}`, true)
	assert.Equal(t, 409, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Cannot publish platform: 0 of 1 comparisons complete")

	resp = h.do(t, "POST", "/api/comparisons", `{"items":[{"platformId":"`+created.Id+`","featureId":"f1","status":"custom","displayValue":"24-bit"}]}`, true)
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"created":1,"updated":0}`, readBody(t, resp))

	resp = h.do(t, "PUT", "/api/platforms/"+created.Id, `{"isDraft":false}`, true)
	require.Equal(t, 200, resp.StatusCode)

	resp = h.do(t, "GET", "/tidal", "", false)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "24-bit")

	resp = h.do(t, "POST", "/api/platforms", `{"name":"Tidal","slug":"tidal","logo":"x"}`, true)
	assert.Equal(t, 409, resp.StatusCode)
	assert.JSONEq(t, `{"error":"A platform with this slug already exists"}`, readBody(t, resp))

	resp = h.do(t, "DELETE", "/api/platforms/audius", "", true)
	assert.Equal(t, 400, resp.StatusCode)

	resp = h.do(t, "DELETE", "/api/platforms/"+created.Id, "", true)
	require.Equal(t, 200, resp.StatusCode)

	resp = h.do(t, "GET", "/tidal", "", false)
	assert.Equal(t, 404, resp.StatusCode, "page purged after delete")
}

func TestPageCacheFollowsEdits(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "GET", "/spotify", "", false)
	require.Equal(t, 200, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "Lossless")

	// other paths reuse request buffers between the cached render and the purge
	for _, path := range []string{"/", "/tidal", "/robots.txt", "/sp"} {
		h.do(t, "GET", path, "", false)
	}

	resp = h.do(t, "PUT", "/api/comparisons/spotify-f1", `{"status":"custom","displayValue":"Lossless"}`, true)
	require.Equal(t, 200, resp.StatusCode)

	resp = h.do(t, "GET", "/spotify", "", false)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Lossless")

	resp = h.do(t, "PUT", "/api/platforms/spotify", `{"isDraft":true}`, true)
	require.Equal(t, 200, resp.StatusCode)

	resp = h.do(t, "GET", "/spotify", "", false)
	assert.Equal(t, 404, resp.StatusCode, "unpublished page is purged")
}

func TestValidationErrors(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, "POST", "/api/features", `{"name":"Lyrics","slug":"Bad Slug","description":"x"}`, true)
	assert.Equal(t, 400, resp.StatusCode)
	assert.JSONEq(t, `{"error":"slug must contain only lowercase letters, numbers and hyphens"}`, readBody(t, resp))

	resp = h.do(t, "POST", "/api/features", `not json`, true)
	assert.Equal(t, 400, resp.StatusCode)

	resp = h.do(t, "GET", "/api/features/completeness", "", true)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAdminPages(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/admin", "/admin/platforms", "/admin/platforms/new", "/admin/platforms/spotify", "/admin/features", "/admin/features/f1", "/admin/comparisons"} {
		resp := h.do(t, "GET", path, "", true)
		assert.Equal(t, 200, resp.StatusCode, path)
	}

	resp := h.do(t, "GET", "/static/admin.js", "", false)
	assert.Equal(t, 200, resp.StatusCode)
}
