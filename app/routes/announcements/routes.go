package announcements

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
)

// SetupAnnouncementRoutes wires the community board and photo gallery.
func SetupAnnouncementRoutes(app *fiber.App) {
	db := config.GetDB()

	api := app.Group("/api/announcements", auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error {
		return GetAnnouncementsAPI(c, db)
	})
	api.Post("/", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return CreateAnnouncementAPI(c, db)
	})
	api.Put("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return UpdateAnnouncementAPI(c, db)
	})
	api.Delete("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return DeleteAnnouncementAPI(c, db)
	})
}
