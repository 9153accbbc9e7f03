package payments

import (
	"fmt"
	"math/rand"
	"time"

	"greenview-homes/app/models"
)

const proofUploadDir = "./uploads/proofs"

// GenerateTransactionReference builds a reference of the form
// TRN-20250315-04821. Collisions are possible and handled by retrying
// against the ledger's unique constraint.
func GenerateTransactionReference(now time.Time) string {
	return fmt.Sprintf("TRN-%s-%05d", now.Format("20060102"), rand.Intn(100000))
}

// ValidModeOfPayment reports whether the submitted mode is one we accept.
func ValidModeOfPayment(mode string) bool {
	switch models.ModeOfPayment(mode) {
	case models.ModeGCash, models.ModeBankTransfer, models.ModeCash, models.ModeCheck:
		return true
	}
	return false
}
