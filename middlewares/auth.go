package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ludoadmin/services"
)

const AuthPath = "/auth"

// RequireCredential sends the operator to the sign-in page while no token is
// stored. Only presence is checked; expiry is left to the backend. JSON
// callers get a 401 carrying the redirect target instead of a 302.
func RequireCredential(creds services.CredentialSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := creds.Token(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "CREDENTIAL_READ_FAILED",
				"data":    nil,
			})
		}

		if token == "" {
			if wantsJSON(c) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"message": "UNAUTHORIZED",
					"data":    fiber.Map{"redirect": AuthPath},
				})
			}
			return c.Redirect(AuthPath, fiber.StatusFound)
		}

		if id, err := services.DecodeIdentity(token); err == nil {
			c.Locals("identity", id)
		}
		return c.Next()
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}
