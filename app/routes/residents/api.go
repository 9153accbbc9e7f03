package residents

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/routes/auth"
	"greenview-homes/app/services"
	"greenview-homes/app/validation"
)

// RegisterRequest is the self-registration payload.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Block     string `json:"block" validate:"required"`
	Lot       string `json:"lot" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=homeowner renter"`
}

// RegisterAPI creates a pending resident account. The family for the
// block/lot is created on first registration; the first non-renter member
// becomes its account holder.
func RegisterAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleHomeowner
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Block:     req.Block,
		Lot:       req.Lot,
		Role:      role,
	}

	if err := database.RegisterResident(db, user, hashedPassword); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return c.Status(409).JSON(fiber.Map{
				"success": false,
				"error":   "An account with this email already exists",
			})
		}
		log.Printf("Failed to register resident: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    user,
		"message": "Registration received. An administrator will review your account.",
	})
}

// GetResidentsAPI returns residents with optional filtering and pagination.
func GetResidentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.ResidentFilters{
		Search: c.Query("search"),
		Block:  c.Query("block"),
		Lot:    c.Query("lot"),
		Role:   c.Query("role"),
		Limit:  c.QueryInt("limit", 10),
		Offset: c.QueryInt("offset", 0),
	}
	if approved := c.Query("is_approved"); approved != "" {
		val := approved == "true"
		filters.IsApproved = &val
	}

	users, totalCount, err := database.GetResidentsWithFilters(db, filters)
	if err != nil {
		log.Printf("Failed to fetch residents: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch residents")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        users,
		"total_count": totalCount,
		"has_more":    filters.Offset+filters.Limit < totalCount,
		"next_offset": filters.Offset + len(users),
	})
}

// GetResidentAPI returns one resident by ID.
func GetResidentAPI(c *fiber.Ctx, db *sql.DB) error {
	user, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Resident not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch resident")
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

// ApproveResidentAPI approves a pending registration and emails the
// resident. A mail failure does not undo the approval.
func ApproveResidentAPI(c *fiber.Ctx, db *sql.DB, mailer services.Mailer) error {
	user, err := database.ApproveResident(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Resident not found")
		}
		log.Printf("Failed to approve resident: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve resident")
	}

	if err := mailer.Send(services.AccountApprovedEmail(user)); err != nil {
		log.Printf("Approval email failed for %s: %v", user.Email, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
		"message": "Resident approved successfully",
	})
}

// UpdateResidentAPI updates a resident's profile fields.
func UpdateResidentAPI(c *fiber.Ctx, db *sql.DB) error {
	type UpdateRequest struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		Phone     string `json:"phone"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	user := &models.User{
		ID:        c.Params("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := database.UpdateResident(db, user); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Resident not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update resident")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Resident updated successfully"})
}

// DeleteResidentAPI soft-deletes a resident. Payment history is kept; the
// family's holder designation is cleared when the deleted user held it.
func DeleteResidentAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.SoftDeleteResident(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Resident not found")
		}
		log.Printf("Failed to delete resident: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete resident")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Resident deleted successfully"})
}
