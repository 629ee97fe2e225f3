package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/services"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONBackendError answers with the status matching the failure's kind:
// 400 for validation, the upstream 4xx as-is, 502 for anything else from
// the backend.
func JSONBackendError(c *fiber.Ctx, err error) error {
	return JSONErrorStatus(c, ErrorStatus(err), err.Error())
}

func ErrorStatus(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch services.KindOf(err) {
	case services.KindValidation:
		if errors.Is(err, services.ErrNoCredential) {
			return fiber.StatusUnauthorized
		}
		return fiber.StatusBadRequest
	case services.KindHTTP:
		if s := services.StatusOf(err); s >= 400 && s < 500 {
			return s
		}
		return fiber.StatusBadGateway
	case services.KindNetwork:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
