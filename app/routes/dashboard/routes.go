package dashboard

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/database"
	"greenview-homes/app/routes/auth"
)

// SetupDashboardRoutes wires the admin overview endpoint.
func SetupDashboardRoutes(app *fiber.App) {
	db := config.GetDB()

	app.Get("/api/admin/dashboard", auth.AuthMiddleware, auth.AdminMiddleware, func(c *fiber.Ctx) error {
		stats, err := database.GetDashboardStats(db, time.Now())
		if err != nil {
			log.Printf("Failed to fetch dashboard stats: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard")
		}
		return c.JSON(fiber.Map{"success": true, "data": stats})
	})
}
