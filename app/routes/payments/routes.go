package payments

import (
	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/config"
	"greenview-homes/app/routes/auth"
	"greenview-homes/app/services"
)

// SetupPaymentRoutes wires submission, reconciliation and the delayed
// dues views.
func SetupPaymentRoutes(app *fiber.App, mailer services.Mailer) {
	db := config.GetDB()

	app.Post("/api/fees/:id/pay", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return SubmitPaymentAPI(c, db)
	})

	api := app.Group("/api/payments", auth.AuthMiddleware)
	api.Get("/mine", func(c *fiber.Ctx) error {
		return GetMyPaymentsAPI(c, db)
	})
	api.Get("/dues", func(c *fiber.Ctx) error {
		return GetMyDuesAPI(c, db)
	})
	api.Get("/:reference", func(c *fiber.Ctx) error {
		return GetPaymentAPI(c, db)
	})
	api.Post("/save", auth.AdminMiddleware, func(c *fiber.Ctx) error {
		return SavePaymentAPI(c, db)
	})

	admin := app.Group("/api/admin/payments", auth.AuthMiddleware, auth.AdminMiddleware)
	admin.Get("/pending", func(c *fiber.Ctx) error {
		return GetPendingPaymentsAPI(c, db)
	})
	admin.Post("/approve", func(c *fiber.Ctx) error {
		return ApprovePaymentAPI(c, db, mailer)
	})
	admin.Post("/reject", func(c *fiber.Ctx) error {
		return RejectPaymentAPI(c, db, mailer)
	})
	admin.Get("/delayed", func(c *fiber.Ctx) error {
		return GetDelayedPaymentsAPI(c, db)
	})
	admin.Get("/delayed/all", func(c *fiber.Ctx) error {
		return GetDelayedGroupedAPI(c, db)
	})
}
