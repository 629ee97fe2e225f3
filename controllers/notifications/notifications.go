package notifications

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/models"
	"ludoadmin/stores"
)

func Broadcast(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NotificationRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if err := reg.Messaging.SendNotification(c.UserContext(), req.Title, req.Message); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Notification sent", nil)
	}
}

// List returns the operator notifications newer than ?after.
func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		after, err := strconv.ParseUint(c.Query("after", "0"), 10, 64)
		if err != nil {
			return helpers.JSONError(c, "INVALID_AFTER")
		}
		return helpers.JSONSuccess(c, "Notifications retrieved successfully", reg.Notifier.Since(after))
	}
}

// DismissErrors clears every store's error slots.
func DismissErrors(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reg.ClearErrors()
		return helpers.JSONSuccess(c, "Errors cleared", nil)
	}
}

func BotUsage(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := reg.Messaging
		_ = store.FetchBotUsage(c.UserContext())
		return helpers.JSONSuccess(c, "Bot usage retrieved successfully", fiber.Map{
			"stats":   store.BotUsage(),
			"loading": store.LoadingAll(),
			"errors":  store.Errors(),
		})
	}
}
