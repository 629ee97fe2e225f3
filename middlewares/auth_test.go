package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludoadmin/services"
)

type brokenCredentials struct{}

func (brokenCredentials) Token(context.Context) (string, error) {
	return "", errors.New("disk gone")
}

func guardedApp(creds services.CredentialSource) *fiber.App {
	app := fiber.New()
	app.Use(RequireCredential(creds))
	app.Get("/dashboard", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/stats", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestPageRequestWithoutTokenRedirects(t *testing.T) {
	app := guardedApp(services.NewMemoryCredentials(""))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, AuthPath, resp.Header.Get(fiber.HeaderLocation))
}

func TestAPIRequestWithoutTokenGets401(t *testing.T) {
	app := guardedApp(services.NewMemoryCredentials(""))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Success)
	assert.Equal(t, AuthPath, body.Data["redirect"])
}

func TestAcceptJSONGets401(t *testing.T) {
	app := guardedApp(services.NewMemoryCredentials(""))
	req := httptest.NewRequest(fiber.MethodGet, "/dashboard", nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStoredTokenPasses(t *testing.T) {
	app := guardedApp(services.NewMemoryCredentials("not-a-jwt"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCredentialReadFailure(t *testing.T) {
	app := guardedApp(brokenCredentials{})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRateLimitRejectsBurst(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(NewIPRateLimiter(0.001, 2)))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}

func TestLimiterIsPerAddress(t *testing.T) {
	l := NewIPRateLimiter(1, 1)

	assert.Same(t, l.GetLimiter("10.0.0.1"), l.GetLimiter("10.0.0.1"))
	assert.NotSame(t, l.GetLimiter("10.0.0.1"), l.GetLimiter("10.0.0.2"))
}
