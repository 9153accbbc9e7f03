package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	err := addObligationUniqueIndex(db)
	if err != nil {
		return err
	}

	err = addPaymentReferenceConstraint(db)
	if err != nil {
		return err
	}

	err = addFeeNameIndex(db)
	if err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addObligationUniqueIndex(db *sql.DB) error {
	// one live obligation per (holder, fee, month, year); makes batch
	// assignment idempotent via ON CONFLICT DO NOTHING
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_block_lot_fees_period
		ON block_lot_fees (account_holder_id, fee_id, month, year)
		WHERE deleted_at IS NULL;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for obligation unique index: %v", err)
		return err
	}
	return nil
}

func addFeeNameIndex(db *sql.DB) error {
	// catalog names are unique among live fees only; a soft-deleted fee
	// frees its name for reuse
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_fees_name_live
		ON fees (LOWER(name)) WHERE deleted_at IS NULL;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for fee name index: %v", err)
		return err
	}
	return nil
}

func addPaymentReferenceConstraint(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_constraint
				WHERE conname = 'monthly_payments_transaction_reference_key'
			) THEN
				ALTER TABLE monthly_payments
				ADD CONSTRAINT monthly_payments_transaction_reference_key UNIQUE (transaction_reference);
				RAISE NOTICE 'Added unique constraint on monthly_payments.transaction_reference';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for transaction reference constraint: %v", err)
		return err
	}
	return nil
}
