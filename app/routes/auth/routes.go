package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.FirstName+" "+claims.LastName)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// AdminMiddleware restricts a route to administrators. Must run after
// AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	role, _ := c.Locals("user_role").(string)
	if role != string(models.RoleAdministrator) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Administrator access required"})
	}
	return c.Next()
}
