package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee is a named recurring charge from the association's fee catalog.
type Fee struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string          `json:"name" gorm:"not null" validate:"required"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" gorm:"not null;type:numeric(10,2)" validate:"required"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
}
