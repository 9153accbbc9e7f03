package database

import (
	"database/sql"
	"fmt"
	"strings"

	"greenview-homes/app/models"
)

// GetUserByEmail returns an active, non-deleted user by email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, block, lot,
			  family_id, is_account_holder, role, is_approved, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true AND deleted_at IS NULL`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.Block, &user.Lot, &user.FamilyID, &user.IsAccountHolder,
		&user.Role, &user.IsApproved, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns a non-deleted user by ID.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, phone, block, lot,
			  family_id, is_account_holder, role, is_approved, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Phone, &user.Block, &user.Lot, &user.FamilyID, &user.IsAccountHolder,
		&user.Role, &user.IsApproved, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterResident inserts a new user, creating their family for the
// block/lot if it does not exist yet. Non-renters become the account
// holder when the family has none. Runs in one transaction.
func RegisterResident(db *sql.DB, user *models.User, hashedPassword string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	family, err := getOrCreateFamily(tx, user.Block, user.Lot)
	if err != nil {
		return fmt.Errorf("failed to resolve family: %v", err)
	}
	user.FamilyID = &family.ID

	user.IsAccountHolder = family.AccountHolderID == nil && user.CanHoldAccount()

	query := `INSERT INTO users (email, password, first_name, last_name, phone, block, lot,
			  family_id, is_account_holder, role, is_approved, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = tx.QueryRow(query,
		user.Email, hashedPassword, user.FirstName, user.LastName, user.Phone,
		user.Block, user.Lot, user.FamilyID, user.IsAccountHolder, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if user.IsAccountHolder {
		_, err = tx.Exec(`UPDATE families SET account_holder_id = $1, updated_at = NOW() WHERE id = $2`,
			user.ID, family.ID)
		if err != nil {
			return fmt.Errorf("failed to set account holder: %v", err)
		}
	}

	return tx.Commit()
}

// ResidentFilters narrows the resident listing.
type ResidentFilters struct {
	Search     string
	Block      string
	Lot        string
	Role       string
	IsApproved *bool
	Limit      int
	Offset     int
}

// GetResidentsWithFilters returns a page of residents plus the total count
// matching the filters.
func GetResidentsWithFilters(db *sql.DB, filters ResidentFilters) ([]*models.User, int, error) {
	baseWhere := "WHERE u.deleted_at IS NULL AND u.role != 'administrator'"
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(
			`(LOWER(u.email) LIKE $%d OR LOWER(u.first_name) LIKE $%d
			  OR LOWER(u.last_name) LIKE $%d OR LOWER(u.first_name || ' ' || u.last_name) LIKE $%d)`,
			argIndex, argIndex+1, argIndex+2, argIndex+3))
		args = append(args, pattern, pattern, pattern, pattern)
		argIndex += 4
	}
	if filters.Block != "" {
		conditions = append(conditions, fmt.Sprintf("u.block = $%d", argIndex))
		args = append(args, filters.Block)
		argIndex++
	}
	if filters.Lot != "" {
		conditions = append(conditions, fmt.Sprintf("u.lot = $%d", argIndex))
		args = append(args, filters.Lot)
		argIndex++
	}
	if filters.Role != "" {
		conditions = append(conditions, fmt.Sprintf("u.role = $%d", argIndex))
		args = append(args, filters.Role)
		argIndex++
	}
	if filters.IsApproved != nil {
		conditions = append(conditions, fmt.Sprintf("u.is_approved = $%d", argIndex))
		args = append(args, *filters.IsApproved)
		argIndex++
	}

	where := baseWhere
	for _, cond := range conditions {
		where += " AND " + cond
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM users u " + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT u.id, u.email, u.first_name, u.last_name, u.phone, u.block, u.lot,
			  u.family_id, u.is_account_holder, u.role, u.is_approved, u.is_active,
			  u.created_at, u.updated_at
			  FROM users u ` + where +
		fmt.Sprintf(" ORDER BY u.block, u.lot, u.last_name LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Phone,
			&user.Block, &user.Lot, &user.FamilyID, &user.IsAccountHolder,
			&user.Role, &user.IsApproved, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			continue
		}
		users = append(users, user)
	}

	return users, total, nil
}

// ApproveResident marks a pending resident as approved.
func ApproveResident(db *sql.DB, id string) (*models.User, error) {
	query := `UPDATE users SET is_approved = true, updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, id)
	if err != nil {
		return nil, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return nil, sql.ErrNoRows
	}
	return GetUserByID(db, id)
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, id, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, id)
	return err
}

// UpdateResident updates a resident's editable profile fields.
func UpdateResident(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET first_name = $1, last_name = $2, phone = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`
	result, err := db.Exec(query, user.FirstName, user.LastName, user.Phone, user.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteResident soft-deletes a user. Obligation and ledger rows keep
// their user references so payment history survives the deletion. If the
// user held the family account the family's holder is cleared in the same
// transaction.
func SoftDeleteResident(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var familyID *string
	var isHolder bool
	err = tx.QueryRow(`SELECT family_id, is_account_holder FROM users
					   WHERE id = $1 AND deleted_at IS NULL`, id).Scan(&familyID, &isHolder)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE users SET deleted_at = NOW(), is_active = false,
					  is_account_holder = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %v", err)
	}

	if isHolder && familyID != nil {
		_, err = tx.Exec(`UPDATE families SET account_holder_id = NULL, updated_at = NOW()
						  WHERE id = $1 AND account_holder_id = $2`, *familyID, id)
		if err != nil {
			return fmt.Errorf("failed to clear account holder: %v", err)
		}
	}

	return tx.Commit()
}
