package bots

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/metrics"
	"ludoadmin/models"
	"ludoadmin/stores"
)

type BotGameRow struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Stake     string    `json:"stake"`
	Players   []string  `json:"players"`
	Bots      int       `json:"bots"`
	Winner    string    `json:"winner"`
	CreatedAt time.Time `json:"createdAt"`
}

func row(g models.Game) BotGameRow {
	r := BotGameRow{
		ID:        g.ID,
		Status:    g.Status,
		Stake:     g.Stake.String(),
		Players:   make([]string, 0, len(g.Players)),
		Winner:    metrics.WinnerLabel(g),
		CreatedAt: g.CreatedAt,
	}
	for _, p := range g.Players {
		r.Players = append(r.Players, p.DisplayName())
		if metrics.IsFlaggedBot(p) {
			r.Bots++
		}
	}
	return r
}

// List renders the bot games page: the analysis over every bot game plus
// one searchable page of rows.
func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		_ = reg.Games.FetchGames(ctx)
		enabled, _ := reg.BotSettings.FetchBotSettings(ctx)

		botGames := metrics.SearchGames(reg.Games.BotGames(), c.Query("search"))
		page, pagination := metrics.Paginate(botGames, c.QueryInt("page", 1), c.QueryInt("pageSize", 10))
		rows := make([]BotGameRow, 0, len(page))
		for _, g := range page {
			rows = append(rows, row(g))
		}

		errs := reg.Games.Errors()
		for k, v := range reg.BotSettings.Errors() {
			errs[k] = v
		}

		return helpers.JSONSuccess(c, "Bot games retrieved successfully", fiber.Map{
			"botsEnabled": enabled,
			"analysis":    reg.Games.BotAnalysis(),
			"games":       rows,
			"pagination":  pagination,
			"errors":      errs,
		})
	}
}

type EnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

// SetEnabled sets BOTS_ENABLED, or toggles it when no value is given.
func SetEnabled(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req EnabledRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return helpers.JSONError(c, "INVALID_JSON")
			}
		}

		var err error
		enabled := false
		if req.Enabled == nil {
			enabled, err = reg.BotSettings.Toggle(c.UserContext())
		} else {
			enabled = *req.Enabled
			err = reg.BotSettings.SetBotsEnabled(c.UserContext(), enabled)
		}
		if err != nil {
			return helpers.JSONBackendError(c, err)
		}

		msg := "Bots disabled successfully!"
		if enabled {
			msg = "Bots enabled successfully!"
		}
		return helpers.JSONSuccess(c, msg, fiber.Map{"botsEnabled": enabled})
	}
}
