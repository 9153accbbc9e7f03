package models

import "time"

// BoardMember is an elected officer of the association.
type BoardMember struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	Position  string     `json:"position" gorm:"not null" validate:"required"`
	TermStart time.Time  `json:"term_start" gorm:"type:date"`
	TermEnd   *time.Time `json:"term_end,omitempty" gorm:"type:date"`
	PhotoPath string     `json:"photo_path,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
