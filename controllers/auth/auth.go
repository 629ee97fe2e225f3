package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/helpers"
	"ludoadmin/services"
)

// Page describes the sign-in form; it is the only page reachable without a token.
func Page() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return helpers.JSONSuccess(c, "Sign in required", fiber.Map{
			"fields": []string{"token"},
			"submit": "POST /auth",
		})
	}
}

type LoginRequest struct {
	Token string `json:"token"`
}

// Login stores an operator token issued by the backend.
func Login(creds services.CredentialStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}

		token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(req.Token), "Bearer "))
		if token == "" {
			return helpers.JSONError(c, "TOKEN_REQUIRED")
		}

		if err := creds.SetToken(c.UserContext(), token); err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_STORE_TOKEN")
		}

		// opaque tokens are fine, the identity is only informative
		id, _ := services.DecodeIdentity(token)
		return helpers.JSONSuccess(c, "Signed in", fiber.Map{
			"identity": id,
			"redirect": "/",
		})
	}
}

func Logout(creds services.CredentialStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := creds.ClearToken(c.UserContext()); err != nil {
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CLEAR_TOKEN")
		}
		return helpers.JSONSuccess(c, "Signed out", fiber.Map{"redirect": "/auth"})
	}
}
