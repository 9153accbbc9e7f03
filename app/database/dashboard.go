package database

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats summarizes the association's standing for the admin view.
type DashboardStats struct {
	ActiveResidents   int             `json:"active_residents"`
	PendingApprovals  int             `json:"pending_approvals"`
	Families          int             `json:"families"`
	UnpaidObligations int             `json:"unpaid_obligations"`
	ProcessingCount   int             `json:"processing_count"`
	PaidObligations   int             `json:"paid_obligations"`
	DelayedCount      int             `json:"delayed_count"`
	CollectedThisYear decimal.Decimal `json:"collected_this_year"`
}

// GetDashboardStats runs the dashboard aggregates. Individual scan
// failures leave zeroes so the page always renders.
func GetDashboardStats(db *sql.DB, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{CollectedThisYear: decimal.Zero}

	db.QueryRow(`SELECT COUNT(*) FROM users
				 WHERE is_active = true AND is_approved = true
				 AND role != 'administrator' AND deleted_at IS NULL`).Scan(&stats.ActiveResidents)

	db.QueryRow(`SELECT COUNT(*) FROM users
				 WHERE is_approved = false AND deleted_at IS NULL
				 AND role != 'administrator'`).Scan(&stats.PendingApprovals)

	db.QueryRow(`SELECT COUNT(*) FROM families WHERE deleted_at IS NULL`).Scan(&stats.Families)

	db.QueryRow(`SELECT
					COUNT(CASE WHEN payment_status = 'Unpaid' THEN 1 END),
					COUNT(CASE WHEN payment_status = 'Processing' THEN 1 END),
					COUNT(CASE WHEN payment_status = 'Paid' THEN 1 END)
				 FROM block_lot_fees WHERE deleted_at IS NULL`).Scan(
		&stats.UnpaidObligations, &stats.ProcessingCount, &stats.PaidObligations)

	db.QueryRow(`SELECT COUNT(*) FROM block_lot_fees
				 WHERE payment_status = 'Unpaid' AND deleted_at IS NULL
				 AND (year < $1 OR (year = $1 AND month < $2))`,
		now.Year(), int(now.Month())).Scan(&stats.DelayedCount)

	db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM monthly_payments
				 WHERE is_approved = true AND EXTRACT(YEAR FROM created_at) = $1`,
		now.Year()).Scan(&stats.CollectedThisYear)

	return stats, nil
}
