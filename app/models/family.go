package models

import "time"

// Family groups the residents of one block/lot. At most one member is the
// designated account holder responsible for the family's dues.
type Family struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Block           string     `json:"block" gorm:"not null;uniqueIndex:idx_block_lot;type:varchar(10)"`
	Lot             string     `json:"lot" gorm:"not null;uniqueIndex:idx_block_lot;type:varchar(10)"`
	AccountHolderID *string    `json:"account_holder_id,omitempty" gorm:"index;type:uuid"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	AccountHolder *User   `json:"account_holder,omitempty" gorm:"foreignKey:AccountHolderID;references:ID"`
	Members       []*User `json:"members,omitempty" gorm:"foreignKey:FamilyID;references:ID"`
}
