package banks

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/models"
	"ludoadmin/stores"
)

func view(store *stores.BankStore) fiber.Map {
	id, form, editing := store.Editing()
	data := fiber.Map{
		"banks":       store.Banks(),
		"editingBank": nil,
		"bankForm":    nil,
		"loading":     store.LoadingAll(),
		"errors":      store.Errors(),
	}
	if editing {
		data["editingBank"] = id
		data["bankForm"] = form
	}
	return data
}

func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_ = reg.Banks.FetchBanks(c.UserContext())
		return helpers.JSONSuccess(c, "Banks retrieved successfully", view(reg.Banks))
	}
}

// Edit opens the form for one bank, dropping any other unsaved edit.
func Edit(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Banks.Edit(c.Params("id")); err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "BANK_NOT_FOUND")
		}
		return helpers.JSONSuccess(c, "Editing bank", view(reg.Banks))
	}
}

func SetForm(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form models.BankForm
		if err := c.BodyParser(&form); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if err := reg.Banks.SetForm(form); err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusConflict, "NO_BANK_BEING_EDITED")
		}
		return helpers.JSONSuccess(c, "Form updated", view(reg.Banks))
	}
}

func Save(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := reg.Banks.Save(c.UserContext())
		if errors.Is(err, stores.ErrNotEditing) {
			return helpers.JSONErrorStatus(c, fiber.StatusConflict, "NO_BANK_BEING_EDITED")
		}
		if err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "Bank details updated successfully", view(reg.Banks))
	}
}

func Cancel(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reg.Banks.Cancel()
		return helpers.JSONSuccess(c, "Edit cancelled", view(reg.Banks))
	}
}
