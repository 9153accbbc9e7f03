package models

import "time"

type User struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password        string     `json:"-" gorm:"not null" validate:"required,min=8"`
	FirstName       string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName        string     `json:"last_name" gorm:"not null" validate:"required"`
	Phone           string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Block           string     `json:"block" gorm:"not null;type:varchar(10)" validate:"required"`
	Lot             string     `json:"lot" gorm:"not null;type:varchar(10)" validate:"required"`
	FamilyID        *string    `json:"family_id,omitempty" gorm:"index;type:uuid"`
	IsAccountHolder bool       `json:"is_account_holder" gorm:"default:false;index"`
	Role            Role       `json:"role" gorm:"not null;default:'homeowner';type:varchar(20)"`
	IsApproved      bool       `json:"is_approved" gorm:"default:false;index"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	AvatarPath      string     `json:"avatar_path,omitempty"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Family *Family `json:"family,omitempty" gorm:"foreignKey:FamilyID;references:ID"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CanHoldAccount reports whether the user's role allows the account holder flag.
// Renters never hold the family account.
func (u *User) CanHoldAccount() bool {
	return u.Role != RoleRenter
}
