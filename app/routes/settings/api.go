package settings

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/validation"
)

// GetSettingsAPI returns the association's configuration row.
func GetSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	s, err := database.GetSettings(db)
	if err != nil {
		log.Printf("Failed to fetch settings: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch settings")
	}
	return c.JSON(fiber.Map{"success": true, "data": s})
}

// UpdateSettingsRequest is the settings payload.
type UpdateSettingsRequest struct {
	AssociationName     string `json:"association_name" validate:"required"`
	MonthlyDue          string `json:"monthly_due" validate:"required"`
	PaymentInstructions string `json:"payment_instructions"`
}

// UpdateSettingsAPI replaces the association's configuration.
func UpdateSettingsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	monthlyDue, err := decimal.NewFromString(req.MonthlyDue)
	if err != nil || monthlyDue.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Monthly due must be a non-negative number")
	}

	s := &models.Setting{
		AssociationName:     req.AssociationName,
		MonthlyDue:          monthlyDue,
		PaymentInstructions: req.PaymentInstructions,
	}
	if err := database.UpdateSettings(db, s); err != nil {
		log.Printf("Failed to update settings: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update settings")
	}

	return c.JSON(fiber.Map{"success": true, "data": s, "message": "Settings updated successfully"})
}
