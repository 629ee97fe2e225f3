package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludoadmin/notify"
	"ludoadmin/services"
	"ludoadmin/stores"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type console struct {
	app        *fiber.App
	reg        *stores.Registry
	backendHit atomic.Int32
	authHeader atomic.Value
}

type reply struct {
	status int
	body   string
}

// newConsole serves abebe from the user endpoints plus any extra routes;
// everything else is a 404.
func newConsole(t *testing.T, extra ...map[string]reply) *console {
	routes := map[string]reply{
		"/admin/users":       {http.StatusOK, `{"users":[{"_id":"u1","username":"abebe","isActive":true}],"total":1}`},
		"/admin/users/stats": {http.StatusOK, `{"users":[{"_id":"u1","username":"abebe","isActive":true}],"total":1}`},
	}
	for _, m := range extra {
		for k, v := range m {
			routes[k] = v
		}
	}

	c := &console{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.backendHit.Add(1)
		c.authHeader.Store(r.Header.Get("Authorization"))
		rep, ok := routes[r.URL.Path]
		if !ok {
			rep = reply{http.StatusNotFound, `{"message":"Not found"}`}
		}
		w.WriteHeader(rep.status)
		_, _ = w.Write([]byte(rep.body))
	}))
	t.Cleanup(backend.Close)

	creds := services.NewMemoryCredentials("")
	reg := stores.NewRegistry(services.NewClient(backend.URL, creds, nil), notify.New(10), stores.Options{})
	t.Cleanup(reg.Dispose)

	c.reg = reg
	c.app = fiber.New()
	Setup(c.app, reg, creds, nil)
	return c
}

func (c *console) do(t *testing.T, method, path, body string) (int, envelope) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := c.app.Test(req)
	require.NoError(t, err)
	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func TestSignInUnlocksAPI(t *testing.T) {
	c := newConsole(t)

	status, env := c.do(t, fiber.MethodGet, "/api/users", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Zero(t, c.backendHit.Load())

	status, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"Bearer abc123"}`)
	require.Equal(t, fiber.StatusOK, status)

	status, env = c.do(t, fiber.MethodGet, "/api/users", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "abebe")
	assert.Equal(t, "Bearer abc123", c.authHeader.Load())

	status, _ = c.do(t, fiber.MethodPost, "/auth/logout", "")
	require.Equal(t, fiber.StatusOK, status)
	status, _ = c.do(t, fiber.MethodGet, "/api/users", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthPageIsPublic(t *testing.T) {
	c := newConsole(t)

	status, env := c.do(t, fiber.MethodGet, "/auth", "")

	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
}

func TestUnknownPageRedirectsWithoutToken(t *testing.T) {
	c := newConsole(t)

	resp, err := c.app.Test(httptest.NewRequest(fiber.MethodGet, "/games", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestCutPercentageOutOfRangeNeverReachesBackend(t *testing.T) {
	c := newConsole(t)
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	status, env := c.do(t, fiber.MethodPut, "/api/settings/cut-percentage", `{"value":150}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Zero(t, c.backendHit.Load())
}

func TestNavListsMenu(t *testing.T) {
	c := newConsole(t)
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	status, env := c.do(t, fiber.MethodGet, "/api/nav", "")

	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Menu []MenuItem `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, Menu, data.Menu)
}

func TestDashboardRendersSurvivingPanels(t *testing.T) {
	c := newConsole(t, map[string]reply{
		"/admin/dashboard":    {http.StatusOK, `{"users":[{"_id":"u1","username":"abebe"}],"games":[],"transactions":[]}`},
		"/admin/transactions": {http.StatusInternalServerError, `{"message":"ledger offline"}`},
	})
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	status, env := c.do(t, fiber.MethodGet, "/api/dashboard", "")

	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Stats   map[string]any     `json:"stats"`
		Display map[string]string  `json:"display"`
		Errors  map[string]*string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotNil(t, data.Stats)
	assert.Equal(t, "1", data.Display["totalUsers"])
	assert.Nil(t, data.Errors["dashboard"])
	require.NotNil(t, data.Errors["realTime"])
	require.NotNil(t, data.Errors["charts"])
	assert.Contains(t, *data.Errors["realTime"], "ledger offline")
}

func TestBotGamesPage(t *testing.T) {
	c := newConsole(t, map[string]reply{
		"/admin/games": {http.StatusOK, `[
			{"_id":"g1","status":"finished","stake":50,"winnerId":"b1","players":[{"userId":"b1","username":"bot_1","isBot":true},{"userId":"h1","username":"kebede"}]},
			{"_id":"g2","status":"finished","stake":50,"winnerId":"h1","players":[{"userId":"b1","username":"bot_1","isBot":true},{"userId":"h1","username":"kebede"}]},
			{"_id":"g3","status":"finished","stake":50,"winnerId":"h2","players":[{"userId":"h2","username":"bot_lookalike"},{"userId":"h3","username":"aisha"}]}
		]`},
		"/admin/settings/BOTS_ENABLED": {http.StatusOK, `{"success":true,"data":{"settingKey":"BOTS_ENABLED","settingValue":true}}`},
	})
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	status, env := c.do(t, fiber.MethodGet, "/api/bots", "")

	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Analysis struct {
			TotalGames int     `json:"totalGames"`
			GamesWon   int     `json:"gamesWon"`
			Accuracy   float64 `json:"accuracy"`
		} `json:"analysis"`
		Games []struct {
			ID      string   `json:"id"`
			Bots    int      `json:"bots"`
			Players []string `json:"players"`
		} `json:"games"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Analysis.TotalGames)
	assert.Equal(t, 1, data.Analysis.GamesWon)
	assert.Equal(t, 50.0, data.Analysis.Accuracy)
	require.Len(t, data.Games, 2)
	for _, g := range data.Games {
		assert.NotEqual(t, "g3", g.ID)
		assert.Equal(t, 1, g.Bots)
		assert.Equal(t, []string{"bot_1", "kebede"}, g.Players)
	}
}

func TestPendingWithdrawalsTotal(t *testing.T) {
	c := newConsole(t, map[string]reply{
		"/wallet/admin/pending-withdrawals": {http.StatusOK, `{"pendingWithdrawals":[
			{"_id":"w1","type":"WITHDRAWAL","status":"PENDING","amount":1500,"user":{"_id":"u1","username":"abebe"}},
			{"_id":"w2","type":"WITHDRAWAL","status":"PENDING","amount":250.5,"user":{"_id":"u2","username":"aisha"}}
		]}`},
	})
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	status, env := c.do(t, fiber.MethodGet, "/api/withdrawals/pending", "")

	require.Equal(t, fiber.StatusOK, status)
	var data struct {
		Count       int    `json:"count"`
		TotalAmount string `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Count)
	assert.Equal(t, "1,750.50 ብር", data.TotalAmount)
}

func TestDismissErrorsClearsFailedPanels(t *testing.T) {
	c := newConsole(t)
	_, _ = c.do(t, fiber.MethodPost, "/auth", `{"token":"abc"}`)

	_, env := c.do(t, fiber.MethodGet, "/api/bots", "")
	var data struct {
		Errors map[string]*string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotNil(t, data.Errors["games"])

	status, env := c.do(t, fiber.MethodDelete, "/api/errors", "")

	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)
	assert.Nil(t, c.reg.Games.Errors()["games"])
	assert.Nil(t, c.reg.BotSettings.Errors()["botSettings"])
}
