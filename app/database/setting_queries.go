package database

import (
	"database/sql"

	"greenview-homes/app/models"
)

// GetSettings returns the association's single settings row.
func GetSettings(db *sql.DB) (*models.Setting, error) {
	s := &models.Setting{}
	query := `SELECT id, association_name, monthly_due, payment_instructions, updated_at
			  FROM settings LIMIT 1`
	err := db.QueryRow(query).Scan(&s.ID, &s.AssociationName, &s.MonthlyDue,
		&s.PaymentInstructions, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateSettings overwrites the association's single settings row.
func UpdateSettings(db *sql.DB, s *models.Setting) error {
	query := `UPDATE settings SET association_name = $1, monthly_due = $2,
			  payment_instructions = $3, updated_at = NOW()
			  WHERE id = (SELECT id FROM settings LIMIT 1)`
	result, err := db.Exec(query, s.AssociationName, s.MonthlyDue, s.PaymentInstructions)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
