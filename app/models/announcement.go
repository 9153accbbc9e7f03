package models

import "time"

// Announcement is a post on the community board. Gallery posts reuse the
// same table with Type set to "gallery" and an image attached.
type Announcement struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title     string           `json:"title" gorm:"not null" validate:"required"`
	Body      string           `json:"body,omitempty"`
	Type      AnnouncementType `json:"type" gorm:"not null;default:'announcement';type:varchar(20)"`
	ImagePath string           `json:"image_path,omitempty"`
	PostedBy  string           `json:"posted_by" gorm:"not null;type:uuid"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
}
