package payments

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
	"greenview-homes/app/services"
	"greenview-homes/app/validation"
)

const maxReferenceAttempts = 5

func saveProofFile(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("proof")
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Proof of payment image is required")
	}

	if err := os.MkdirAll(proofUploadDir, 0o755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(proofUploadDir, filename)); err != nil {
		return "", err
	}
	return filepath.Join("uploads/proofs", filename), nil
}

// removeProofFile deletes a stored proof again when the submission it
// belonged to never made it into the database.
func removeProofFile(webPath string) {
	diskPath := filepath.Join(proofUploadDir, filepath.Base(webPath))
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove orphaned proof %s: %v", diskPath, err)
	}
}

func parseFormInt(c *fiber.Ctx, key string) int {
	n, err := strconv.Atoi(c.FormValue(key))
	if err != nil {
		return 0
	}
	return n
}

// SubmitPaymentAPI records a resident's proof of payment. The submission
// covers every unpaid month of the year up to and including the one
// submitted, so a resident who fell behind settles in one go.
func SubmitPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	userID, _ := c.Locals("user_id").(string)
	user, err := database.GetUserByID(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if !user.IsAccountHolder {
		return fiber.NewError(fiber.StatusForbidden, "Only the family account holder can submit payments")
	}

	if _, err := database.GetFeeByID(db, c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Fee not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee")
	}

	month := parseFormInt(c, "month")
	year := parseFormInt(c, "year")
	if month < 1 || month > 12 || year < 2000 {
		return fiber.NewError(fiber.StatusBadRequest, "A valid month and year are required")
	}

	mode := c.FormValue("mode_of_payment")
	if !ValidModeOfPayment(mode) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mode of payment")
	}

	proofPath, err := saveProofFile(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		log.Printf("Failed to store proof upload: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to store proof of payment")
	}

	var result *database.SubmissionResult
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference := GenerateTransactionReference(time.Now())
		result, err = database.CreatePaymentSubmission(db, user.ID, year, month, reference, proofPath, models.ModeOfPayment(mode))
		if err == database.ErrDuplicateReference {
			continue
		}
		break
	}
	if err != nil {
		removeProofFile(proofPath)
		if err == database.ErrNoUnpaidObligations {
			return fiber.NewError(fiber.StatusNotFound, "No unpaid dues found for the selected period")
		}
		log.Printf("Failed to record payment submission: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    result,
		"message": "Payment submitted for review",
	})
}

// SavePaymentRequest settles explicitly selected obligations, the flow
// used when a resident pays in person at the association office.
type SavePaymentRequest struct {
	ObligationIDs  []string `json:"obligation_ids" validate:"required,min=1,dive,uuid4"`
	AmountTendered string   `json:"amount_tendered" validate:"required"`
	ModeOfPayment  string   `json:"mode_of_payment" validate:"required"`
}

// SavePaymentAPI marks the selected obligations paid in one transaction.
func SavePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SavePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}
	if !ValidModeOfPayment(req.ModeOfPayment) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid mode of payment")
	}

	amount, err := decimal.NewFromString(req.AmountTendered)
	if err != nil || amount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount tendered must be a non-negative number")
	}

	var result *database.SubmissionResult
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		reference := GenerateTransactionReference(time.Now())
		result, err = database.SavePaymentTransaction(db, req.ObligationIDs, amount, reference, models.ModeOfPayment(req.ModeOfPayment))
		if err == database.ErrDuplicateReference {
			continue
		}
		break
	}
	if err != nil {
		switch err {
		case database.ErrNoUnpaidObligations:
			return fiber.NewError(fiber.StatusNotFound, "None of the selected dues are unpaid")
		case database.ErrMixedHolders:
			return fiber.NewError(fiber.StatusBadRequest, "Selected dues belong to more than one account holder")
		case database.ErrInsufficientAmount:
			return fiber.NewError(fiber.StatusBadRequest, "Amount tendered does not cover the selected dues")
		}
		log.Printf("Failed to save payment transaction: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    result,
		"message": "Payment recorded successfully",
	})
}

// ReferenceRequest carries the shared transaction reference.
type ReferenceRequest struct {
	TransactionReference string `json:"transaction_reference" validate:"required"`
}

// ApprovePaymentAPI confirms a submitted payment. Approving twice is a
// no-op. The confirmation email is fire-and-forget; a mail failure still
// returns success so the books stay consistent with what the admin saw.
func ApprovePaymentAPI(c *fiber.Ctx, db *sql.DB, mailer services.Mailer) error {
	var req ReferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	payment, alreadyApproved, err := database.ApprovePayment(db, req.TransactionReference)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		case database.ErrAlreadyRejected:
			return fiber.NewError(fiber.StatusConflict, "Payment has already been rejected")
		}
		log.Printf("Failed to approve payment %s: %v", req.TransactionReference, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to approve payment")
	}

	emailSent := false
	if !alreadyApproved {
		if err := mailer.Send(services.PaymentApprovedEmail(payment)); err != nil {
			log.Printf("Approval email failed for %s: %v", payment.TransactionReference, err)
		} else {
			emailSent = true
		}
	}

	message := "Payment approved successfully"
	if alreadyApproved {
		message = "Payment was already approved"
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       payment,
		"email_sent": emailSent,
		"message":    message,
	})
}

// RejectPaymentRequest carries the reference and the reason shown to the payer.
type RejectPaymentRequest struct {
	TransactionReference string `json:"transaction_reference" validate:"required"`
	Reason               string `json:"reason" validate:"required"`
}

// RejectPaymentAPI declines a submitted payment and reverts its covered
// dues to unpaid so the resident can resubmit.
func RejectPaymentAPI(c *fiber.Ctx, db *sql.DB, mailer services.Mailer) error {
	var req RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return validation.Respond422(c, err)
	}

	payment, err := database.RejectPayment(db, req.TransactionReference, req.Reason)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		case database.ErrAlreadyApproved:
			return fiber.NewError(fiber.StatusConflict, "Approved payments cannot be rejected")
		}
		log.Printf("Failed to reject payment %s: %v", req.TransactionReference, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reject payment")
	}

	if err := mailer.Send(services.PaymentRejectedEmail(payment, req.Reason)); err != nil {
		log.Printf("Rejection email failed for %s: %v", payment.TransactionReference, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
		"message": "Payment rejected",
	})
}

// GetPendingPaymentsAPI lists submissions awaiting review.
func GetPendingPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	payments, err := database.GetPendingPayments(db)
	if err != nil {
		log.Printf("Failed to fetch pending payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch pending payments")
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}

// GetPaymentAPI returns one ledger entry by reference, the receipt view.
// Residents can only look up their own payments.
func GetPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentByReference(db, c.Params("reference"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Payment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	role, _ := c.Locals("user_role").(string)
	userID, _ := c.Locals("user_id").(string)
	if role != string(models.RoleAdministrator) && payment.UserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Not your payment")
	}

	return c.JSON(fiber.Map{"success": true, "data": payment})
}

// GetMyPaymentsAPI lists the signed-in resident's payment history.
func GetMyPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	userID, _ := c.Locals("user_id").(string)
	payments, err := database.GetPaymentsByUser(db, userID)
	if err != nil {
		log.Printf("Failed to fetch payments for user %s: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	return c.JSON(fiber.Map{"success": true, "data": payments})
}

// GetMyDuesAPI lists the signed-in holder's obligations for a year.
func GetMyDuesAPI(c *fiber.Ctx, db *sql.DB) error {
	userID, _ := c.Locals("user_id").(string)
	year := c.QueryInt("year", time.Now().Year())

	obligations, err := database.GetObligationsByHolder(db, userID, year)
	if err != nil {
		log.Printf("Failed to fetch dues for user %s: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dues")
	}

	settings, err := database.GetSettings(db)
	if err != nil {
		log.Printf("Failed to fetch settings: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dues")
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"data":                 obligations,
		"payment_instructions": settings.PaymentInstructions,
	})
}

// GetDelayedPaymentsAPI lists overdue obligations row by row, searchable
// by transaction reference or resident name.
func GetDelayedPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)
	search := c.Query("search")

	rows, totalCount, err := database.GetDelayedObligations(db, time.Now(), search, limit, offset)
	if err != nil {
		log.Printf("Failed to fetch delayed dues: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch delayed dues")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        rows,
		"total_count": totalCount,
		"has_more":    offset+limit < totalCount,
		"next_offset": offset + len(rows),
	})
}

// GetDelayedGroupedAPI lists overdue obligations grouped per resident and
// year, the view the reminder scheduler also works from.
func GetDelayedGroupedAPI(c *fiber.Ctx, db *sql.DB) error {
	groups, err := database.GetDelayedObligationsGrouped(db, time.Now())
	if err != nil {
		log.Printf("Failed to fetch grouped delayed dues: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch delayed dues")
	}
	return c.JSON(fiber.Map{"success": true, "data": groups})
}
