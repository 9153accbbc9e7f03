package families

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
	"greenview-homes/app/services"
)

// SetupFamilyRoutes wires family listing and account holder management.
func SetupFamilyRoutes(app *fiber.App, mailer services.Mailer) {
	db := config.GetDB()

	api := app.Group("/api/families", auth.AuthMiddleware)
	api.Get("/", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return GetFamiliesAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFamilyAPI(c, db)
	})
	api.Post("/:id/transfer-holder", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return TransferHolderAPI(c, db, mailer)
	})
}
