package database

import (
	"database/sql"

	"greenview-homes/app/models"
)

// GetAnnouncements returns live announcements of the given type, newest
// first. An empty type returns both announcements and gallery posts.
func GetAnnouncements(db *sql.DB, announcementType string) ([]*models.Announcement, error) {
	query := `SELECT id, title, body, type, image_path, posted_by, created_at, updated_at
			  FROM announcements WHERE deleted_at IS NULL`
	var args []interface{}
	if announcementType != "" {
		query += ` AND type = $1`
		args = append(args, announcementType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Announcement
	for rows.Next() {
		a := &models.Announcement{}
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Type, &a.ImagePath,
			&a.PostedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			continue
		}
		posts = append(posts, a)
	}
	return posts, nil
}

// CreateAnnouncement inserts an announcement or gallery post.
func CreateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `INSERT INTO announcements (title, body, type, image_path, posted_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, a.Title, a.Body, a.Type, a.ImagePath, a.PostedBy).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateAnnouncement updates an announcement's text; the attached image
// stays as posted.
func UpdateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `UPDATE announcements SET title = $1, body = $2, updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`
	result, err := db.Exec(query, a.Title, a.Body, a.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteAnnouncement soft-deletes an announcement.
func SoftDeleteAnnouncement(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE announcements SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
