package database

import (
	"database/sql"
	"fmt"

	"greenview-homes/app/models"
)

// getOrCreateFamily finds the family for a block/lot pair, creating it on
// first sight. Insert-first against the (block, lot) unique constraint so
// two concurrent first registrations both land on the same row instead of
// one failing. Runs inside the caller's transaction.
func getOrCreateFamily(tx *sql.Tx, block, lot string) (*models.Family, error) {
	_, err := tx.Exec(`INSERT INTO families (block, lot, created_at, updated_at)
					   VALUES ($1, $2, NOW(), NOW())
					   ON CONFLICT (block, lot) DO NOTHING`, block, lot)
	if err != nil {
		return nil, err
	}

	family := &models.Family{}
	query := `SELECT id, block, lot, account_holder_id, created_at, updated_at
			  FROM families WHERE block = $1 AND lot = $2`
	err = tx.QueryRow(query, block, lot).Scan(
		&family.ID, &family.Block, &family.Lot, &family.AccountHolderID,
		&family.CreatedAt, &family.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return family, nil
}

// GetFamilyByID returns a family with its members.
func GetFamilyByID(db *sql.DB, id string) (*models.Family, error) {
	family := &models.Family{}
	query := `SELECT id, block, lot, account_holder_id, created_at, updated_at
			  FROM families WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(
		&family.ID, &family.Block, &family.Lot, &family.AccountHolderID,
		&family.CreatedAt, &family.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT id, email, first_name, last_name, phone, block, lot,
						   family_id, is_account_holder, role, is_approved, is_active,
						   created_at, updated_at
						   FROM users WHERE family_id = $1 AND deleted_at IS NULL
						   ORDER BY is_account_holder DESC, last_name`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		member := &models.User{}
		err := rows.Scan(
			&member.ID, &member.Email, &member.FirstName, &member.LastName, &member.Phone,
			&member.Block, &member.Lot, &member.FamilyID, &member.IsAccountHolder,
			&member.Role, &member.IsApproved, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
		)
		if err != nil {
			continue
		}
		family.Members = append(family.Members, member)
	}

	return family, nil
}

// GetAllFamilies returns all families ordered by block and lot.
func GetAllFamilies(db *sql.DB) ([]*models.Family, error) {
	query := `SELECT f.id, f.block, f.lot, f.account_holder_id, f.created_at, f.updated_at
			  FROM families f WHERE f.deleted_at IS NULL
			  ORDER BY f.block, f.lot`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var families []*models.Family
	for rows.Next() {
		family := &models.Family{}
		err := rows.Scan(
			&family.ID, &family.Block, &family.Lot, &family.AccountHolderID,
			&family.CreatedAt, &family.UpdatedAt,
		)
		if err != nil {
			continue
		}
		families = append(families, family)
	}

	return families, nil
}

// getPrimaryAccountHolder resolves the member of the given family who
// shares its block/lot and carries the account holder flag.
func getPrimaryAccountHolder(tx *sql.Tx, familyID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.email, u.first_name, u.last_name, u.role
			  FROM users u
			  JOIN families f ON u.family_id = f.id
			  WHERE f.id = $1 AND u.block = f.block AND u.lot = f.lot
			  AND u.is_account_holder = true AND u.deleted_at IS NULL`
	err := tx.QueryRow(query, familyID).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Role,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// TransferAccountHolder moves the account holder designation of a family
// to another member, reassigning every obligation and ledger row from the
// old holder. The whole fan-out is one transaction so a failure cannot
// leave mixed attribution.
func TransferAccountHolder(db *sql.DB, familyID, newHolderID string) (oldHolder *models.User, newHolder *models.User, err error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	newHolder = &models.User{}
	err = tx.QueryRow(`SELECT id, email, first_name, last_name, role FROM users
					   WHERE id = $1 AND family_id = $2 AND deleted_at IS NULL`,
		newHolderID, familyID).Scan(
		&newHolder.ID, &newHolder.Email, &newHolder.FirstName, &newHolder.LastName, &newHolder.Role)
	if err != nil {
		return nil, nil, err
	}
	if !newHolder.CanHoldAccount() {
		return nil, nil, fmt.Errorf("renters cannot hold the family account")
	}

	oldHolder, err = getPrimaryAccountHolder(tx, familyID)
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, err
	}

	if oldHolder != nil {
		if oldHolder.ID == newHolderID {
			return nil, nil, fmt.Errorf("user already holds the family account")
		}
		_, err = tx.Exec(`UPDATE users SET is_account_holder = false, updated_at = NOW() WHERE id = $1`,
			oldHolder.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to clear old holder: %v", err)
		}
		_, err = tx.Exec(`UPDATE block_lot_fees SET account_holder_id = $1, updated_at = NOW()
						  WHERE account_holder_id = $2 AND deleted_at IS NULL`,
			newHolderID, oldHolder.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to reassign obligations: %v", err)
		}
		_, err = tx.Exec(`UPDATE monthly_payments SET user_id = $1, updated_at = NOW() WHERE user_id = $2`,
			newHolderID, oldHolder.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to reassign payments: %v", err)
		}
	}

	_, err = tx.Exec(`UPDATE users SET is_account_holder = true, updated_at = NOW() WHERE id = $1`,
		newHolderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set new holder: %v", err)
	}
	_, err = tx.Exec(`UPDATE families SET account_holder_id = $1, updated_at = NOW() WHERE id = $2`,
		newHolderID, familyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update family: %v", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, err
	}
	return oldHolder, newHolder, nil
}
