package board

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
)

// SetupBoardRoutes wires the board of directors records.
func SetupBoardRoutes(app *fiber.App) {
	db := config.GetDB()

	api := app.Group("/api/board", auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error {
		return GetBoardMembersAPI(c, db)
	})
	api.Post("/", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return CreateBoardMemberAPI(c, db)
	})
	api.Put("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return UpdateBoardMemberAPI(c, db)
	})
	api.Delete("/:id", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return DeleteBoardMemberAPI(c, db)
	})
}
