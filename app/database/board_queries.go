package database

import (
	"database/sql"

	"greenview-homes/app/models"
)

// GetAllBoardMembers returns live board members, current terms first.
func GetAllBoardMembers(db *sql.DB) ([]*models.BoardMember, error) {
	query := `SELECT id, name, position, term_start, term_end, photo_path, created_at, updated_at
			  FROM board_members WHERE deleted_at IS NULL
			  ORDER BY term_start DESC, position`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*models.BoardMember
	for rows.Next() {
		m := &models.BoardMember{}
		err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.TermStart, &m.TermEnd,
			&m.PhotoPath, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

// CreateBoardMember inserts a board member record.
func CreateBoardMember(db *sql.DB, m *models.BoardMember) error {
	query := `INSERT INTO board_members (name, position, term_start, term_end, photo_path, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return db.QueryRow(query, m.Name, m.Position, m.TermStart, m.TermEnd, m.PhotoPath).Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// UpdateBoardMember updates a board member record.
func UpdateBoardMember(db *sql.DB, m *models.BoardMember) error {
	query := `UPDATE board_members SET name = $1, position = $2, term_start = $3,
			  term_end = $4, photo_path = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`
	result, err := db.Exec(query, m.Name, m.Position, m.TermStart, m.TermEnd, m.PhotoPath, m.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SoftDeleteBoardMember soft-deletes a board member record.
func SoftDeleteBoardMember(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE board_members SET deleted_at = NOW()
							WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
