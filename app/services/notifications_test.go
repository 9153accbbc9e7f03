package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
)

func TestPaymentApprovedEmail(t *testing.T) {
	mp := &models.MonthlyPayment{
		TransactionReference: "TRN-20250315-00042",
		PeriodCovered:        "January to March 2025",
		Amount:               decimal.RequireFromString("1500.00"),
		PayerName:            "Maria Santos",
		PayerEmail:           "maria@example.com",
	}

	msg := PaymentApprovedEmail(mp)
	assert.Equal(t, "maria@example.com", msg.To)
	assert.Equal(t, "Payment Approved - TRN-20250315-00042", msg.Subject)
	assert.Contains(t, msg.Body, "January to March 2025")
	assert.Contains(t, msg.Body, "1500.00")
}

func TestPaymentRejectedEmail(t *testing.T) {
	mp := &models.MonthlyPayment{
		TransactionReference: "TRN-20250315-00042",
		PeriodCovered:        "March 2025",
		PayerName:            "Maria Santos",
		PayerEmail:           "maria@example.com",
	}

	msg := PaymentRejectedEmail(mp, "blurry proof image")
	assert.Equal(t, "Payment Rejected - TRN-20250315-00042", msg.Subject)
	assert.Contains(t, msg.Body, "blurry proof image")
	assert.Contains(t, msg.Body, "returned to Unpaid")
}

func TestAccountApprovedEmail(t *testing.T) {
	user := &models.User{
		Email:     "juan@example.com",
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Block:     "4",
		Lot:       "12",
	}

	msg := AccountApprovedEmail(user)
	assert.Equal(t, "juan@example.com", msg.To)
	assert.Contains(t, msg.Body, "Juan Dela Cruz")
	assert.Contains(t, msg.Body, "Block 4 Lot 12")
}

func TestDelayedDuesEmail(t *testing.T) {
	group := &database.DelayedGroup{
		UserName:  "Maria Santos",
		UserEmail: "maria@example.com",
		Year:      2024,
		Months:    []int{10, 11, 12},
		Total:     decimal.RequireFromString("1500.00"),
	}

	settings := &models.Setting{
		AssociationName:     "Greenview Homes",
		PaymentInstructions: "GCash 0917-000-0000 or pay at the office.",
	}

	msg := DelayedDuesEmail(group, settings)
	assert.Equal(t, "Overdue Association Dues - 2024", msg.Subject)
	assert.Contains(t, msg.Body, "October, November, December")
	assert.Contains(t, msg.Body, "1500.00")
	assert.Contains(t, msg.Body, "GCash 0917-000-0000")
	assert.Contains(t, msg.Body, "Greenview Homes")
}

func TestConsoleMailerRecordsMessages(t *testing.T) {
	mailer := NewConsoleMailer()
	mailer.DisableOutput = true

	err := mailer.Send(EmailMessage{To: "a@example.com", Subject: "s", Body: "b"})
	assert.NoError(t, err)
	err = mailer.Send(EmailMessage{To: "b@example.com", Subject: "s2", Body: "b2"})
	assert.NoError(t, err)

	assert.Equal(t, 2, mailer.SentCount())
	assert.Equal(t, "a@example.com", mailer.Sent[0].To)
}
