package fees

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/validation"
)

// FeeRequest is the create/update payload for a catalog entry.
type FeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" validate:"required"`
}

// GetFeesAPI lists the fee catalog.
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	fees, err := database.GetAllFees(db)
	if err != nil {
		log.Printf("Failed to fetch fees: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	return c.JSON(fiber.Map{"success": true, "data": fees})
}

// GetFeeAPI returns one catalog entry.
func GetFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	fee, err := database.GetFeeByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee")
	}
	return c.JSON(fiber.Map{"success": true, "data": fee})
}

// CreateFeeAPI adds a catalog entry.
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}

	fee := &models.Fee{
		Name:        req.Name,
		Description: req.Description,
		Amount:      amount,
	}
	if err := database.CreateFee(db, fee); err != nil {
		if database.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "A fee with this name already exists")
		}
		log.Printf("Failed to create fee: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fee,
		"message": "Fee created successfully",
	})
}

// UpdateFeeAPI updates a catalog entry. Amount changes apply to future
// assignments only; existing obligations keep the amount they were billed.
func UpdateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}

	fee := &models.Fee{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Amount:      amount,
	}
	if err := database.UpdateFee(db, fee); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		if database.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "A fee with this name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Fee updated successfully"})
}

// DeleteFeeAPI soft-deletes a catalog entry; assigned obligations survive.
func DeleteFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteFee(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Fee deleted successfully"})
}

// AssignFeeRequest selects holders and billing periods for a fee.
type AssignFeeRequest struct {
	FeeID            string   `json:"fee_id" validate:"required,uuid4"`
	AccountHolderIDs []string `json:"account_holder_ids" validate:"required,min=1,dive,uuid4"`
	Months           []int    `json:"months" validate:"required,min=1,dive,gte=1,lte=12"`
	Year             int      `json:"year" validate:"required,gte=2000"`
}

// AssignFeeAPI fans a fee out to the selected account holders for the
// selected months. Re-running the same assignment creates nothing new.
func AssignFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req AssignFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	if _, err := database.GetFeeByID(db, req.FeeID); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	result, err := database.AssignFeeToHolders(db, req.FeeID, req.AccountHolderIDs, req.Months, req.Year)
	if err != nil {
		log.Printf("Failed to assign fee %s: %v", req.FeeID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to assign fee")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
		"message": "Fee assigned successfully",
	})
}
