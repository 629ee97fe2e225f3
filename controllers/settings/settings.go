package settings

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/models"
	"ludoadmin/stores"
)

func view(store *stores.GameSettingsStore) fiber.Map {
	current, loaded := store.Settings()
	data := fiber.Map{
		"settings":      nil,
		"ranges":        stores.SettingRanges,
		"cutPercentage": store.CutPercentage(),
		"loading":       store.LoadingAll(),
		"errors":        store.Errors(),
	}
	if loaded {
		data["settings"] = current
	}
	return data
}

func Get(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := reg.GameSettings
		_ = store.FetchSettings(c.UserContext())
		_, _ = store.FetchCutPercentage(c.UserContext())
		return helpers.JSONSuccess(c, "Settings retrieved successfully", view(store))
	}
}

type FieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// Patch edits one field of the local copy. Nothing is sent until Save.
func Patch(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req FieldRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}

		store := reg.GameSettings
		var err error
		if req.Field == models.FieldBotNameSuffixSep {
			var text string
			if json.Unmarshal(req.Value, &text) != nil {
				return helpers.JSONError(c, "VALUE_MUST_BE_TEXT")
			}
			err = store.SetText(req.Field, text)
		} else {
			var number float64
			if json.Unmarshal(req.Value, &number) != nil || number != math.Trunc(number) {
				return helpers.JSONError(c, "VALUE_MUST_BE_INTEGER")
			}
			err = store.SetNumber(req.Field, int(number))
		}
		if err != nil {
			return settingsError(c, err)
		}
		return helpers.JSONSuccess(c, "Setting updated", view(store))
	}
}

type BotNameRequest struct {
	Name string `json:"name"`
}

func AddBotName(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req BotNameRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if err := reg.GameSettings.AddBotName(req.Name); err != nil {
			return settingsError(c, err)
		}
		return helpers.JSONSuccess(c, "Bot name added", view(reg.GameSettings))
	}
}

func RemoveBotName(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := c.ParamsInt("index")
		if err != nil {
			return helpers.JSONError(c, "INVALID_INDEX")
		}
		if err := reg.GameSettings.RemoveBotName(index); err != nil {
			return settingsError(c, err)
		}
		return helpers.JSONSuccess(c, "Bot name removed", view(reg.GameSettings))
	}
}

func Save(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.GameSettings.SaveSettings(c.UserContext()); err != nil {
			return settingsError(c, err)
		}
		return helpers.JSONSuccess(c, "Settings saved successfully!", view(reg.GameSettings))
	}
}

func Reset(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.GameSettings.Reset(c.UserContext()); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Settings reset", view(reg.GameSettings))
	}
}

type CutPercentageRequest struct {
	Value *float64 `json:"value"`
}

func SaveCutPercentage(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CutPercentageRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if req.Value == nil {
			return helpers.JSONError(c, "VALUE_REQUIRED")
		}
		if err := reg.GameSettings.SaveCutPercentage(c.UserContext(), *req.Value); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Cut percentage updated", view(reg.GameSettings))
	}
}

func settingsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, stores.ErrNoSettings) {
		return helpers.JSONErrorStatus(c, fiber.StatusConflict, "SETTINGS_NOT_LOADED")
	}
	return helpers.JSONBackendError(c, err)
}
