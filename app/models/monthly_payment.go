package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyPayment is the ledger entry for one payment submission. It is
// correlated to the obligations it covers through TransactionReference.
type MonthlyPayment struct {
	ID                   string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	TransactionReference string          `json:"transaction_reference" gorm:"uniqueIndex;not null"`
	UserID               string          `json:"user_id" gorm:"not null;index;type:uuid"`
	Amount               decimal.Decimal `json:"amount" gorm:"not null;type:numeric(10,2)"`
	PeriodCovered        string          `json:"period_covered" gorm:"not null"`
	ModeOfPayment        string          `json:"mode_of_payment" gorm:"type:varchar(30)"`
	ProofPath            string          `json:"proof_path,omitempty"`
	IsApproved           bool            `json:"is_approved" gorm:"default:false;index"`
	RejectReason         *string         `json:"reject_reason,omitempty"`
	CreatedAt            time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`

	// PayerName and PayerEmail come from the joined user row on read paths.
	PayerName  string `json:"payer_name,omitempty" gorm:"-"`
	PayerEmail string `json:"payer_email,omitempty" gorm:"-"`
}

// IsPending reports whether the submission still awaits an admin decision.
func (m *MonthlyPayment) IsPending() bool {
	return !m.IsApproved && m.RejectReason == nil
}
