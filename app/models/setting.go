package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting is the single configuration row for the association. It is read
// once per request by handlers and passed down explicitly; the query layer
// never fetches it on its own.
type Setting struct {
	ID                  string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssociationName     string          `json:"association_name" gorm:"not null"`
	MonthlyDue          decimal.Decimal `json:"monthly_due" gorm:"not null;type:numeric(10,2)"`
	PaymentInstructions string          `json:"payment_instructions,omitempty"`
	UpdatedAt           time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
