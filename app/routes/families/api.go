package families

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/database"
	"greenview-homes/app/services"
	"greenview-homes/app/validation"
)

// GetFamiliesAPI returns every family with its members.
func GetFamiliesAPI(c *fiber.Ctx, db *sql.DB) error {
	families, err := database.GetAllFamilies(db)
	if err != nil {
		log.Printf("Failed to fetch families: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch families")
	}
	return c.JSON(fiber.Map{"success": true, "data": families})
}

// GetFamilyAPI returns one family and its members.
func GetFamilyAPI(c *fiber.Ctx, db *sql.DB) error {
	family, err := database.GetFamilyByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Family not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch family")
	}
	return c.JSON(fiber.Map{"success": true, "data": family})
}

// TransferHolderRequest names the member who takes over the family account.
type TransferHolderRequest struct {
	NewHolderID string `json:"new_holder_id" validate:"required,uuid4"`
}

// TransferHolderAPI moves the account holder designation to another family
// member. Existing obligations and payment history move with it.
func TransferHolderAPI(c *fiber.Ctx, db *sql.DB, mailer services.Mailer) error {
	var req TransferHolderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	oldHolder, newHolder, err := database.TransferAccountHolder(db, c.Params("id"), req.NewHolderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Member not found in this family")
		}
		log.Printf("Failed to transfer account holder: %v", err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	if err := mailer.Send(services.HolderTransferEmail(newHolder)); err != nil {
		log.Printf("Holder transfer email failed for %s: %v", newHolder.Email, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"old_holder": oldHolder,
			"new_holder": newHolder,
		},
		"message": "Account holder transferred successfully",
	})
}
