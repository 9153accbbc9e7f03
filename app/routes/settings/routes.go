package settings

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
)

// SetupSettingsRoutes wires the association configuration endpoints.
func SetupSettingsRoutes(app *fiber.App) {
	db := config.GetDB()

	admin := app.Group("/api/admin/settings", auth.AuthMiddleware, auth.AdminMiddleware)
	admin.Get("/", func(c *fiber.Ctx) error {
		return GetSettingsAPI(c, db)
	})
	admin.Put("/", func(c *fiber.Ctx) error {
		return UpdateSettingsAPI(c, db)
	})
}
