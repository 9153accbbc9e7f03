package board

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/validation"
)

// BoardMemberRequest is the create/update payload for an officer record.
type BoardMemberRequest struct {
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	TermStart string `json:"term_start" validate:"required"`
	TermEnd   string `json:"term_end"`
	PhotoPath string `json:"photo_path"`
}

func (r *BoardMemberRequest) toModel() (*models.BoardMember, error) {
	termStart, err := time.Parse("2006-01-02", r.TermStart)
	if err != nil {
		return nil, err
	}
	m := &models.BoardMember{
		Name:      r.Name,
		Position:  r.Position,
		TermStart: termStart,
		PhotoPath: r.PhotoPath,
	}
	if r.TermEnd != "" {
		termEnd, err := time.Parse("2006-01-02", r.TermEnd)
		if err != nil {
			return nil, err
		}
		m.TermEnd = &termEnd
	}
	return m, nil
}

// GetBoardMembersAPI lists the association's officers.
func GetBoardMembersAPI(c *fiber.Ctx, db *sql.DB) error {
	members, err := database.GetAllBoardMembers(db)
	if err != nil {
		log.Printf("Failed to fetch board members: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch board members")
	}
	return c.JSON(fiber.Map{"success": true, "data": members})
}

// CreateBoardMemberAPI records a new officer.
func CreateBoardMemberAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BoardMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	member, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Term dates must be in YYYY-MM-DD format")
	}
	if err := database.CreateBoardMember(db, member); err != nil {
		log.Printf("Failed to create board member: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create board member")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    member,
		"message": "Board member added successfully",
	})
}

// UpdateBoardMemberAPI updates an officer record.
func UpdateBoardMemberAPI(c *fiber.Ctx, db *sql.DB) error {
	var req BoardMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	member, err := req.toModel()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Term dates must be in YYYY-MM-DD format")
	}
	member.ID = c.Params("id")
	if err := database.UpdateBoardMember(db, member); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Board member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update board member")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Board member updated successfully"})
}

// DeleteBoardMemberAPI removes an officer record.
func DeleteBoardMemberAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteBoardMember(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Board member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete board member")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Board member removed successfully"})
}
