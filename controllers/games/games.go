package games

import (
	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/stores"
)

func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := reg.Games
		_ = store.FetchGames(c.UserContext())

		return helpers.JSONSuccess(c, "Games retrieved successfully", fiber.Map{
			"games":   store.GamesByStatus(c.Query("status")),
			"stats":   store.GameStats(),
			"loading": store.LoadingAll(),
			"errors":  store.Errors(),
		})
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

func SetStatus(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StatusRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if err := reg.Games.UpdateGameStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Game status updated", reg.Games.GameStats())
	}
}

func Delete(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Games.DeleteGame(c.UserContext(), c.Params("id")); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Game deleted", reg.Games.GameStats())
	}
}
