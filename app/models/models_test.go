package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDelayedAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		month   int
		year    int
		status  PaymentStatus
		delayed bool
	}{
		{"previous month same year", 5, 2025, PaymentUnpaid, true},
		{"current month", 6, 2025, PaymentUnpaid, false},
		{"future month", 7, 2025, PaymentUnpaid, false},
		{"any month previous year", 12, 2024, PaymentUnpaid, true},
		{"future year", 1, 2026, PaymentUnpaid, false},
		{"processing is not delayed", 1, 2024, PaymentProcessing, false},
		{"paid is not delayed", 1, 2024, PaymentPaid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := &BlockLotFee{Month: tc.month, Year: tc.year, PaymentStatus: tc.status}
			assert.Equal(t, tc.delayed, o.IsDelayedAt(now))
		})
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestCanHoldAccount(t *testing.T) {
	assert.True(t, (&User{Role: RoleHomeowner}).CanHoldAccount())
	assert.True(t, (&User{Role: RoleAdministrator}).CanHoldAccount())
	assert.False(t, (&User{Role: RoleRenter}).CanHoldAccount())
}

func TestFullName(t *testing.T) {
	u := &User{FirstName: "Maria", LastName: "Santos"}
	assert.Equal(t, "Maria Santos", u.FullName())
}

func TestMonthlyPaymentIsPending(t *testing.T) {
	reason := "blurry proof image"

	assert.True(t, (&MonthlyPayment{}).IsPending())
	assert.False(t, (&MonthlyPayment{IsApproved: true}).IsPending())
	assert.False(t, (&MonthlyPayment{RejectReason: &reason}).IsPending())
}
