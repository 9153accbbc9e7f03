package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"greenview-homes/app/models"
)

var (
	ErrNoUnpaidObligations = errors.New("no unpaid obligations match the requested period")
	ErrDuplicateReference  = errors.New("transaction reference already exists")
	ErrAlreadyApproved     = errors.New("payment has already been approved")
	ErrAlreadyRejected     = errors.New("payment has already been rejected")
	ErrInsufficientAmount  = errors.New("amount tendered does not cover the selected obligations")
	ErrMixedHolders        = errors.New("selected obligations belong to more than one account holder")
)

// SubmissionResult is returned to the payer after a proof-of-payment
// submission has been recorded.
type SubmissionResult struct {
	TransactionReference string          `json:"transaction_reference"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	MonthsPaid           []int           `json:"months_paid"`
	PeriodCovered        string          `json:"period_covered"`
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func scanObligations(rows *sql.Rows) []*models.BlockLotFee {
	var obligations []*models.BlockLotFee
	for rows.Next() {
		o := &models.BlockLotFee{}
		err := rows.Scan(&o.ID, &o.FeeID, &o.AccountHolderID, &o.Month, &o.Year,
			&o.PaymentStatus, &o.FeeName, &o.FeeAmount)
		if err != nil {
			continue
		}
		obligations = append(obligations, o)
	}
	return obligations
}

// CreatePaymentSubmission records a proof-of-payment covering every unpaid
// month of the given year up to and including the submitted month. Matched
// obligations move to Processing under a shared transaction reference and
// one ledger row carries the aggregate. Matching, fan-out and the ledger
// insert run in a single transaction with the matched rows locked, so two
// concurrent submissions for the same holder cannot double-count.
func CreatePaymentSubmission(db *sql.DB, accountHolderID string, year, month int,
	reference, proofPath string, mode models.ModeOfPayment) (*SubmissionResult, error) {

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT b.id, b.fee_id, b.account_holder_id, b.month, b.year,
						   b.payment_status, f.name, f.amount
						   FROM block_lot_fees b
						   JOIN fees f ON b.fee_id = f.id
						   WHERE b.account_holder_id = $1 AND b.year = $2 AND b.month <= $3
						   AND b.payment_status = 'Unpaid' AND b.deleted_at IS NULL
						   ORDER BY b.month
						   FOR UPDATE OF b`, accountHolderID, year, month)
	if err != nil {
		return nil, err
	}
	matched := scanObligations(rows)
	rows.Close()
	if len(matched) == 0 {
		return nil, ErrNoUnpaidObligations
	}

	ids := make([]string, len(matched))
	for i, o := range matched {
		ids[i] = o.ID
	}

	_, err = tx.Exec(`UPDATE block_lot_fees b
					  SET payment_status = 'Processing',
						  transaction_reference = $1,
						  proof_path = $2,
						  mode_of_payment = $3,
						  transaction_date = NOW(),
						  amount_paid = f.amount,
						  updated_at = NOW()
					  FROM fees f
					  WHERE b.fee_id = f.id AND b.id = ANY($4)`,
		reference, proofPath, string(mode), pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to mark obligations processing: %v", err)
	}

	total := TotalOf(matched)
	period := PeriodCovered(MonthsOf(matched), year)

	_, err = tx.Exec(`INSERT INTO monthly_payments
					  (transaction_reference, user_id, amount, period_covered, mode_of_payment, proof_path, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		reference, accountHolderID, total, period, string(mode), proofPath)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("failed to insert ledger entry: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &SubmissionResult{
		TransactionReference: reference,
		TotalAmount:          total,
		MonthsPaid:           MonthsOf(matched),
		PeriodCovered:        period,
	}, nil
}

// SavePaymentTransaction settles an explicit set of obligations against an
// amount tendered at the office. All selected obligations must be unpaid
// and belong to the same account holder; the tendered amount must cover
// their sum. Settled rows go straight to Paid and the ledger entry is
// created approved, since the cash changed hands in person.
func SavePaymentTransaction(db *sql.DB, obligationIDs []string, amountTendered decimal.Decimal,
	reference string, mode models.ModeOfPayment) (*SubmissionResult, error) {

	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT b.id, b.fee_id, b.account_holder_id, b.month, b.year,
						   b.payment_status, f.name, f.amount
						   FROM block_lot_fees b
						   JOIN fees f ON b.fee_id = f.id
						   WHERE b.id = ANY($1) AND b.payment_status = 'Unpaid' AND b.deleted_at IS NULL
						   ORDER BY b.year, b.month
						   FOR UPDATE OF b`, pq.Array(obligationIDs))
	if err != nil {
		return nil, err
	}
	matched := scanObligations(rows)
	rows.Close()
	if len(matched) == 0 {
		return nil, ErrNoUnpaidObligations
	}

	holderID := matched[0].AccountHolderID
	for _, o := range matched {
		if o.AccountHolderID != holderID {
			return nil, ErrMixedHolders
		}
	}

	total := TotalOf(matched)
	if amountTendered.LessThan(total) {
		return nil, ErrInsufficientAmount
	}

	ids := make([]string, len(matched))
	for i, o := range matched {
		ids[i] = o.ID
	}

	_, err = tx.Exec(`UPDATE block_lot_fees b
					  SET payment_status = 'Paid',
						  transaction_reference = $1,
						  mode_of_payment = $2,
						  transaction_date = NOW(),
						  amount_paid = f.amount,
						  updated_at = NOW()
					  FROM fees f
					  WHERE b.fee_id = f.id AND b.id = ANY($3)`,
		reference, string(mode), pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to settle obligations: %v", err)
	}

	period := PeriodCoveredSpan(matched)
	_, err = tx.Exec(`INSERT INTO monthly_payments
					  (transaction_reference, user_id, amount, period_covered, mode_of_payment, is_approved, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())`,
		reference, holderID, total, period, string(mode))
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("failed to insert ledger entry: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &SubmissionResult{
		TransactionReference: reference,
		TotalAmount:          total,
		MonthsPaid:           MonthsOf(matched),
		PeriodCovered:        period,
	}, nil
}

// GetPaymentByReference returns a ledger entry with its payer joined.
func GetPaymentByReference(db *sql.DB, reference string) (*models.MonthlyPayment, error) {
	mp := &models.MonthlyPayment{}
	query := `SELECT m.id, m.transaction_reference, m.user_id, m.amount, m.period_covered,
			  m.mode_of_payment, COALESCE(m.proof_path, ''), m.is_approved, m.reject_reason,
			  m.created_at, m.updated_at,
			  u.first_name || ' ' || u.last_name, u.email
			  FROM monthly_payments m
			  JOIN users u ON m.user_id = u.id
			  WHERE m.transaction_reference = $1`
	err := db.QueryRow(query, reference).Scan(
		&mp.ID, &mp.TransactionReference, &mp.UserID, &mp.Amount, &mp.PeriodCovered,
		&mp.ModeOfPayment, &mp.ProofPath, &mp.IsApproved, &mp.RejectReason,
		&mp.CreatedAt, &mp.UpdatedAt, &mp.PayerName, &mp.PayerEmail,
	)
	if err != nil {
		return nil, err
	}
	return mp, nil
}

// GetPaymentsByUser returns a user's ledger history, newest first.
func GetPaymentsByUser(db *sql.DB, userID string) ([]*models.MonthlyPayment, error) {
	query := `SELECT id, transaction_reference, user_id, amount, period_covered,
			  mode_of_payment, COALESCE(proof_path, ''), is_approved, reject_reason,
			  created_at, updated_at
			  FROM monthly_payments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.MonthlyPayment
	for rows.Next() {
		mp := &models.MonthlyPayment{}
		err := rows.Scan(&mp.ID, &mp.TransactionReference, &mp.UserID, &mp.Amount,
			&mp.PeriodCovered, &mp.ModeOfPayment, &mp.ProofPath, &mp.IsApproved,
			&mp.RejectReason, &mp.CreatedAt, &mp.UpdatedAt)
		if err != nil {
			continue
		}
		payments = append(payments, mp)
	}
	return payments, nil
}

// GetPendingPayments returns ledger entries awaiting an admin decision.
func GetPendingPayments(db *sql.DB) ([]*models.MonthlyPayment, error) {
	query := `SELECT m.id, m.transaction_reference, m.user_id, m.amount, m.period_covered,
			  m.mode_of_payment, COALESCE(m.proof_path, ''), m.is_approved, m.reject_reason,
			  m.created_at, m.updated_at,
			  u.first_name || ' ' || u.last_name, u.email
			  FROM monthly_payments m
			  JOIN users u ON m.user_id = u.id
			  WHERE m.is_approved = false AND m.reject_reason IS NULL
			  ORDER BY m.created_at`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.MonthlyPayment
	for rows.Next() {
		mp := &models.MonthlyPayment{}
		err := rows.Scan(&mp.ID, &mp.TransactionReference, &mp.UserID, &mp.Amount,
			&mp.PeriodCovered, &mp.ModeOfPayment, &mp.ProofPath, &mp.IsApproved,
			&mp.RejectReason, &mp.CreatedAt, &mp.UpdatedAt, &mp.PayerName, &mp.PayerEmail)
		if err != nil {
			continue
		}
		payments = append(payments, mp)
	}
	return payments, nil
}

// ApprovePayment marks the ledger entry approved and fans Paid out to
// every obligation sharing the reference, in one transaction. Approving an
// already approved reference is a no-op that reports success.
func ApprovePayment(db *sql.DB, reference string) (*models.MonthlyPayment, bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback()

	mp := &models.MonthlyPayment{}
	err = tx.QueryRow(`SELECT m.id, m.transaction_reference, m.user_id, m.amount, m.period_covered,
					   m.is_approved, m.reject_reason,
					   u.first_name || ' ' || u.last_name, u.email
					   FROM monthly_payments m
					   JOIN users u ON m.user_id = u.id
					   WHERE m.transaction_reference = $1
					   FOR UPDATE OF m`, reference).Scan(
		&mp.ID, &mp.TransactionReference, &mp.UserID, &mp.Amount, &mp.PeriodCovered,
		&mp.IsApproved, &mp.RejectReason, &mp.PayerName, &mp.PayerEmail)
	if err != nil {
		return nil, false, err
	}
	if mp.RejectReason != nil {
		return nil, false, ErrAlreadyRejected
	}
	if mp.IsApproved {
		return mp, true, nil
	}

	_, err = tx.Exec(`UPDATE monthly_payments SET is_approved = true, updated_at = NOW() WHERE id = $1`, mp.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to approve ledger entry: %v", err)
	}
	_, err = tx.Exec(`UPDATE block_lot_fees SET payment_status = 'Paid', updated_at = NOW()
					  WHERE transaction_reference = $1 AND deleted_at IS NULL`, reference)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fan out paid status: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	mp.IsApproved = true
	return mp, false, nil
}

// RejectPayment records the rejection reason and reverts every obligation
// sharing the reference to Unpaid, clearing the payment attempt's linkage
// so the months can be resubmitted. An approved reference cannot be
// rejected.
func RejectPayment(db *sql.DB, reference, reason string) (*models.MonthlyPayment, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	mp := &models.MonthlyPayment{}
	err = tx.QueryRow(`SELECT m.id, m.transaction_reference, m.user_id, m.amount, m.period_covered,
					   m.is_approved, m.reject_reason,
					   u.first_name || ' ' || u.last_name, u.email
					   FROM monthly_payments m
					   JOIN users u ON m.user_id = u.id
					   WHERE m.transaction_reference = $1
					   FOR UPDATE OF m`, reference).Scan(
		&mp.ID, &mp.TransactionReference, &mp.UserID, &mp.Amount, &mp.PeriodCovered,
		&mp.IsApproved, &mp.RejectReason, &mp.PayerName, &mp.PayerEmail)
	if err != nil {
		return nil, err
	}
	if mp.IsApproved {
		return nil, ErrAlreadyApproved
	}

	_, err = tx.Exec(`UPDATE monthly_payments SET reject_reason = $1, updated_at = NOW() WHERE id = $2`,
		reason, mp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record rejection: %v", err)
	}
	_, err = tx.Exec(`UPDATE block_lot_fees
					  SET payment_status = 'Unpaid',
						  transaction_reference = NULL,
						  proof_path = NULL,
						  mode_of_payment = NULL,
						  transaction_date = NULL,
						  amount_paid = 0,
						  updated_at = NOW()
					  WHERE transaction_reference = $1 AND deleted_at IS NULL`, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to revert obligations: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	mp.RejectReason = &reason
	return mp, nil
}

// DelayedObligation is one overdue row in the searchable delayed listing.
type DelayedObligation struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	UserName             string          `json:"user_name"`
	UserEmail            string          `json:"user_email"`
	Block                string          `json:"block"`
	Lot                  string          `json:"lot"`
	FeeName              string          `json:"fee_name"`
	Amount               decimal.Decimal `json:"amount"`
	Month                int             `json:"month"`
	Year                 int             `json:"year"`
	TransactionReference string          `json:"transaction_reference,omitempty"`
}

// GetDelayedObligations returns unpaid obligations whose period precedes
// the month of now, optionally filtered by a free-text search against the
// transaction reference or the payer's concatenated name. Paginated.
func GetDelayedObligations(db *sql.DB, now time.Time, search string, limit, offset int) ([]*DelayedObligation, int, error) {
	where := `WHERE b.payment_status = 'Unpaid' AND b.deleted_at IS NULL
			  AND (b.year < $1 OR (b.year = $1 AND b.month < $2))`
	args := []interface{}{now.Year(), int(now.Month())}
	argIndex := 3

	if search != "" {
		pattern := "%" + search + "%"
		where += fmt.Sprintf(` AND (COALESCE(b.transaction_reference, '') ILIKE $%d
				  OR (u.first_name || ' ' || u.last_name) ILIKE $%d)`, argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM block_lot_fees b JOIN users u ON b.account_holder_id = u.id ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT b.id, u.id, u.first_name || ' ' || u.last_name, u.email, u.block, u.lot,
			  f.name, f.amount, b.month, b.year, COALESCE(b.transaction_reference, '')
			  FROM block_lot_fees b
			  JOIN users u ON b.account_holder_id = u.id
			  JOIN fees f ON b.fee_id = f.id ` + where +
		fmt.Sprintf(" ORDER BY b.year, b.month, u.last_name LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var delayed []*DelayedObligation
	for rows.Next() {
		d := &DelayedObligation{}
		err := rows.Scan(&d.ID, &d.UserID, &d.UserName, &d.UserEmail, &d.Block, &d.Lot,
			&d.FeeName, &d.Amount, &d.Month, &d.Year, &d.TransactionReference)
		if err != nil {
			continue
		}
		delayed = append(delayed, d)
	}
	return delayed, total, nil
}

// DelayedGroup aggregates one user's overdue months within one year.
type DelayedGroup struct {
	UserID    string          `json:"user_id"`
	UserName  string          `json:"user_name"`
	UserEmail string          `json:"user_email"`
	Year      int             `json:"year"`
	Months    []int           `json:"months"`
	Total     decimal.Decimal `json:"total"`
}

// GetDelayedObligationsGrouped returns all overdue obligations grouped per
// (user, year) for dunning.
func GetDelayedObligationsGrouped(db *sql.DB, now time.Time) ([]*DelayedGroup, error) {
	query := `SELECT u.id, u.first_name || ' ' || u.last_name, u.email, b.year,
			  array_agg(b.month ORDER BY b.month), SUM(f.amount)
			  FROM block_lot_fees b
			  JOIN users u ON b.account_holder_id = u.id
			  JOIN fees f ON b.fee_id = f.id
			  WHERE b.payment_status = 'Unpaid' AND b.deleted_at IS NULL
			  AND (b.year < $1 OR (b.year = $1 AND b.month < $2))
			  GROUP BY u.id, u.first_name, u.last_name, u.email, b.year
			  ORDER BY u.last_name, b.year`
	rows, err := db.Query(query, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*DelayedGroup
	for rows.Next() {
		g := &DelayedGroup{}
		var months pq.Int64Array
		err := rows.Scan(&g.UserID, &g.UserName, &g.UserEmail, &g.Year, &months, &g.Total)
		if err != nil {
			continue
		}
		g.Months = make([]int, len(months))
		for i, m := range months {
			g.Months[i] = int(m)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// GetObligationsByHolder returns a holder's obligations for a year with
// fee details, oldest month first.
func GetObligationsByHolder(db *sql.DB, accountHolderID string, year int) ([]*models.BlockLotFee, error) {
	query := `SELECT b.id, b.fee_id, b.account_holder_id, b.month, b.year, b.payment_status,
			  b.transaction_reference, b.proof_path, b.amount_paid, b.mode_of_payment,
			  b.transaction_date, b.created_at, b.updated_at, f.name, f.amount
			  FROM block_lot_fees b
			  JOIN fees f ON b.fee_id = f.id
			  WHERE b.account_holder_id = $1 AND b.year = $2 AND b.deleted_at IS NULL
			  ORDER BY b.month`
	rows, err := db.Query(query, accountHolderID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var obligations []*models.BlockLotFee
	for rows.Next() {
		o := &models.BlockLotFee{}
		err := rows.Scan(&o.ID, &o.FeeID, &o.AccountHolderID, &o.Month, &o.Year,
			&o.PaymentStatus, &o.TransactionReference, &o.ProofPath, &o.AmountPaid,
			&o.ModeOfPayment, &o.TransactionDate, &o.CreatedAt, &o.UpdatedAt,
			&o.FeeName, &o.FeeAmount)
		if err != nil {
			continue
		}
		obligations = append(obligations, o)
	}
	return obligations, nil
}
