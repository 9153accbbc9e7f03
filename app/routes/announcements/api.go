package announcements

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/validation"
)

const imageUploadDir = "./uploads/announcements"

// GetAnnouncementsAPI lists posts, optionally filtered to the gallery.
func GetAnnouncementsAPI(c *fiber.Ctx, db *sql.DB) error {
	announcements, err := database.GetAnnouncements(db, c.Query("type"))
	if err != nil {
		log.Printf("Failed to fetch announcements: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch announcements")
	}
	return c.JSON(fiber.Map{"success": true, "data": announcements})
}

// CreateAnnouncementAPI posts a new announcement or gallery entry. The
// image is optional for plain announcements and required for the gallery.
func CreateAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	title := c.FormValue("title")
	if title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title is required")
	}
	postType := models.AnnouncementType(c.FormValue("type", string(models.TypeAnnouncement)))
	if postType != models.TypeAnnouncement && postType != models.TypeGallery {
		return fiber.NewError(fiber.StatusBadRequest, "Type must be announcement or gallery")
	}

	var imagePath string
	if file, err := c.FormFile("image"); err == nil {
		if err := os.MkdirAll(imageUploadDir, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store image")
		}
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveFile(file, filepath.Join(imageUploadDir, filename)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to store image")
		}
		imagePath = filepath.Join("uploads/announcements", filename)
	}
	if postType == models.TypeGallery && imagePath == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Gallery posts require an image")
	}

	userID, _ := c.Locals("user_id").(string)
	announcement := &models.Announcement{
		Title:     title,
		Body:      c.FormValue("body"),
		Type:      postType,
		ImagePath: imagePath,
		PostedBy:  userID,
	}
	if err := database.CreateAnnouncement(db, announcement); err != nil {
		log.Printf("Failed to create announcement: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    announcement,
		"message": "Announcement posted successfully",
	})
}

// UpdateAnnouncementAPI edits the title and body of a post.
func UpdateAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	type UpdateRequest struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	announcement := &models.Announcement{
		ID:    c.Params("id"),
		Title: req.Title,
		Body:  req.Body,
	}
	if err := database.UpdateAnnouncement(db, announcement); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update announcement")
	}

	return c.JSON(fiber.Map{"success": true, "message": "Announcement updated successfully"})
}

// DeleteAnnouncementAPI removes a post from the board.
func DeleteAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SoftDeleteAnnouncement(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Announcement not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Announcement deleted successfully"})
}
