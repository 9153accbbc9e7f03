package fees

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
)

// SetupFeeRoutes wires the fee catalog and the assignment endpoint.
func SetupFeeRoutes(app *fiber.App) {
	db := config.GetDB()

	api := app.Group("/api/fees", auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error {
		return GetFeesAPI(c, db)
	})
	api.Post("/", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, db)
	})
	api.Post("/assign", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return AssignFeeAPI(c, db)
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeAPI(c, db)
	})
	api.Put("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return UpdateFeeAPI(c, db)
	})
	api.Delete("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return DeleteFeeAPI(c, db)
	})
}
