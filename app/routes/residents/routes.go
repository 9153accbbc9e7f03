package residents

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
	"greenview-homes/app/services"
)

// SetupResidentRoutes wires resident registration and management endpoints.
func SetupResidentRoutes(app *fiber.App, mailer services.Mailer) {
	db := config.GetDB()

	// Registration lives under /api/auth next to login since both are
	// entered before a session exists.
	app.Post("/api/auth/register", func(c *fiber.Ctx) error {
		return RegisterAPI(c, db)
	})

	api := app.Group("/api/residents", auth.AuthMiddleware)
	api.Get("/", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return GetResidentsAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetResidentAPI(c, db)
	})
	api.Post("/:id/approve", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return ApproveResidentAPI(c, db, mailer)
	})
	api.Put("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return UpdateResidentAPI(c, db)
	})
	api.Delete("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return DeleteResidentAPI(c, db)
	})
}
