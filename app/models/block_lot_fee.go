package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlockLotFee is one fee owed by one account holder for one month/year: a
// single obligation row. Status only moves Unpaid -> Processing -> Paid,
// or back to Unpaid when a payment is rejected.
type BlockLotFee struct {
	ID                   string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FeeID                string          `json:"fee_id" gorm:"not null;index;type:uuid"`
	AccountHolderID      string          `json:"account_holder_id" gorm:"not null;index;type:uuid"`
	Month                int             `json:"month" gorm:"not null;type:smallint" validate:"required,min=1,max=12"`
	Year                 int             `json:"year" gorm:"not null;type:smallint" validate:"required,min=2000"`
	PaymentStatus        PaymentStatus   `json:"payment_status" gorm:"not null;default:'Unpaid';index;type:varchar(20)"`
	TransactionReference *string         `json:"transaction_reference,omitempty" gorm:"index"`
	ProofPath            *string         `json:"proof_path,omitempty"`
	AmountPaid           decimal.Decimal `json:"amount_paid" gorm:"type:numeric(10,2);default:0"`
	ModeOfPayment        *string         `json:"mode_of_payment,omitempty" gorm:"type:varchar(30)"`
	TransactionDate      *time.Time      `json:"transaction_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt            *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Fee           *Fee  `json:"fee,omitempty" gorm:"foreignKey:FeeID;references:ID"`
	AccountHolder *User `json:"account_holder,omitempty" gorm:"foreignKey:AccountHolderID;references:ID"`

	// FeeName and FeeAmount come from the joined fee row on read paths.
	FeeName   string          `json:"fee_name,omitempty" gorm:"-"`
	FeeAmount decimal.Decimal `json:"fee_amount,omitempty" gorm:"-"`
}

// IsDelayedAt reports whether the obligation's period is strictly before
// the month of the given date while still unpaid.
func (b *BlockLotFee) IsDelayedAt(now time.Time) bool {
	if b.PaymentStatus != PaymentUnpaid {
		return false
	}
	return b.Year < now.Year() || (b.Year == now.Year() && b.Month < int(now.Month()))
}
