package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"greenview-homes/app/models"
)

// GetAllFees returns the live fee catalog.
func GetAllFees(db *sql.DB) ([]*models.Fee, error) {
	query := `SELECT id, name, description, amount, created_at, updated_at
			  FROM fees WHERE deleted_at IS NULL ORDER BY name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		fee := &models.Fee{}
		if err := rows.Scan(&fee.ID, &fee.Name, &fee.Description, &fee.Amount,
			&fee.CreatedAt, &fee.UpdatedAt); err != nil {
			continue
		}
		fees = append(fees, fee)
	}
	return fees, nil
}

// GetFeeByID returns a live fee by ID.
func GetFeeByID(db *sql.DB, id string) (*models.Fee, error) {
	fee := &models.Fee{}
	query := `SELECT id, name, description, amount, created_at, updated_at
			  FROM fees WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&fee.ID, &fee.Name, &fee.Description,
		&fee.Amount, &fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return fee, nil
}

// CreateFee inserts a catalog fee.
func CreateFee(db *sql.DB, fee *models.Fee) error {
	query := `INSERT INTO fees (name, description, amount, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, fee.Name, fee.Description, fee.Amount).Scan(
		&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)
}

// UpdateFee updates a catalog fee's name, description and amount.
func UpdateFee(db *sql.DB, fee *models.Fee) error {
	query := `UPDATE fees SET name = $1, description = $2, amount = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`
	result, err := db.Exec(query, fee.Name, fee.Description, fee.Amount, fee.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteFee soft-deletes a catalog fee. Obligations referencing it are
// untouched.
func SoftDeleteFee(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE fees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AssignmentResult summarizes one batch fee assignment.
type AssignmentResult struct {
	FamiliesAssigned   int `json:"families_assigned"`
	FamiliesSkipped    int `json:"families_skipped"`
	ObligationsCreated int `json:"obligations_created"`
}

// AssignFeeToHolders creates Unpaid obligations for the given fee, months
// and year, one set per family. Co-habitants resolve to the same family and
// are only processed once; families without a primary account holder are
// skipped. The partial unique index on (account_holder_id, fee_id, month,
// year) makes re-assignment of overlapping months a no-op. One transaction
// covers the whole batch.
func AssignFeeToHolders(db *sql.DB, feeID string, accountHolderIDs []string, months []int, year int) (*AssignmentResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result := &AssignmentResult{}
	processedFamilies := make(map[string]bool)

	for _, userID := range accountHolderIDs {
		var familyID *string
		err := tx.QueryRow(`SELECT family_id FROM users WHERE id = $1 AND deleted_at IS NULL`,
			userID).Scan(&familyID)
		if err != nil {
			log.Printf("Skipping unknown user %s: %v", userID, err)
			result.FamiliesSkipped++
			continue
		}
		if familyID == nil || processedFamilies[*familyID] {
			result.FamiliesSkipped++
			continue
		}
		processedFamilies[*familyID] = true

		holder, err := getPrimaryAccountHolder(tx, *familyID)
		if err != nil {
			if err != sql.ErrNoRows {
				return nil, err
			}
			// family has no designated holder, nothing to assign against
			result.FamiliesSkipped++
			continue
		}

		// one multi-row insert per family
		valueRows := make([]string, 0, len(months))
		args := []interface{}{feeID, holder.ID, year}
		argIndex := 4
		for _, month := range months {
			valueRows = append(valueRows, fmt.Sprintf("($1, $2, $%d, $3, 'Unpaid', NOW(), NOW())", argIndex))
			args = append(args, month)
			argIndex++
		}
		query := `INSERT INTO block_lot_fees (fee_id, account_holder_id, month, year, payment_status, created_at, updated_at)
				  VALUES ` + strings.Join(valueRows, ", ") + `
				  ON CONFLICT (account_holder_id, fee_id, month, year) WHERE deleted_at IS NULL DO NOTHING`
		res, err := tx.Exec(query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to assign fee to holder %s: %v", holder.ID, err)
		}
		inserted, _ := res.RowsAffected()
		result.ObligationsCreated += int(inserted)
		result.FamiliesAssigned++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
