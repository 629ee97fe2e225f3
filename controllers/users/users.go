package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/metrics"
	"ludoadmin/stores"
)

// List loads users and stats, then applies ?search, ?status, ?page and
// ?pageSize to the loaded list.
func List(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := reg.Users
		_ = store.Initialize(c.UserContext())

		store.SetFilter(metrics.UserFilter{
			Search: c.Query("search"),
			Status: c.Query("status"),
		})
		store.SetPage(c.QueryInt("page", 1), c.QueryInt("pageSize", 10))
		visible, page := store.Visible()

		return helpers.JSONSuccess(c, "Users retrieved successfully", fiber.Map{
			"users":      visible,
			"total":      store.Total(),
			"stats":      store.Stats(),
			"pagination": page,
			"loading":    store.LoadingAll(),
			"errors":     store.Errors(),
		})
	}
}

func Get(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := reg.Users.UserByID(c.UserContext(), c.Params("id"))
		if errors.Is(err, stores.ErrUserNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
		}
		if err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "User retrieved successfully", user)
	}
}

type StatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func SetStatus(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req StatusRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}
		if req.IsActive == nil {
			return helpers.JSONError(c, "IS_ACTIVE_REQUIRED")
		}

		if err := reg.Users.SetUserStatus(c.UserContext(), c.Params("id"), *req.IsActive); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "User status updated", fiber.Map{
			"id":       c.Params("id"),
			"isActive": *req.IsActive,
			"stats":    reg.Users.Stats(),
		})
	}
}

func Delete(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Users.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "User deleted", fiber.Map{"total": reg.Users.Total()})
	}
}

func RecalculateStats(reg *stores.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := reg.Users.RecalculateStats(c.UserContext()); err != nil {
			return helpers.JSONBackendError(c, err)
		}
		return helpers.JSONSuccess(c, "User stats recalculated", fiber.Map{"total": reg.Users.Total()})
	}
}
