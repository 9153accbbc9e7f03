package main

import (
	"log"
	"os"

	"greenview-homes/app/config"
	"greenview-homes/app/database"
	"greenview-homes/app/routes/announcements"
	"greenview-homes/app/routes/auth"
	"greenview-homes/app/routes/board"
	"greenview-homes/app/routes/dashboard"
	"greenview-homes/app/routes/families"
	"greenview-homes/app/routes/fees"
	"greenview-homes/app/routes/payments"
	"greenview-homes/app/routes/residents"
	"greenview-homes/app/routes/settings"
	"greenview-homes/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler renders every error as the standard JSON envelope.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Outgoing mail; falls back to console output when SMTP is not configured
	var mailer services.Mailer
	if smtp := config.GetSMTP(); smtp.Username != "" {
		mailer = services.NewSMTPMailer(smtp)
	} else {
		log.Println("SMTP not configured, emails will be logged to stdout")
		mailer = services.NewConsoleMailer()
	}

	// Start background scheduler for delayed dues reminders
	services.StartScheduler(config.GetDB(), mailer)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded proof and gallery images
	app.Static("/uploads", "./uploads")

	// Routes
	auth.SetupAuthRoutes(app)
	residents.SetupResidentRoutes(app, mailer)
	families.SetupFamilyRoutes(app, mailer)
	fees.SetupFeeRoutes(app)
	payments.SetupPaymentRoutes(app, mailer)
	announcements.SetupAnnouncementRoutes(app)
	board.SetupBoardRoutes(app)
	settings.SetupSettingsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
