package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminAuth gates the review endpoints behind the shared dashboard secret.
// Single static credential, no per-user identity: unsuitable for multi-operator
// deployments, kept for parity with the dashboard it serves.
func AdminAuth(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		password := ctx.Get("x-admin-password")
		if password == "" || password != secret {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return ctx.Next()
	}
}
