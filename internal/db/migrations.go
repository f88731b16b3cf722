package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS ticket_update_journal (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		ticket_uuid TEXT NOT NULL,
		status TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		attachment_name TEXT NOT NULL DEFAULT '',
		user_id UUID NOT NULL,
		org_id UUID,
		outcome TEXT NOT NULL,
		error_message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_update_journal_ticket ON ticket_update_journal (ticket_uuid, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_update_journal_user ON ticket_update_journal (user_id);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'chk_ticket_update_journal_outcome'
		) THEN
			ALTER TABLE ticket_update_journal
				ADD CONSTRAINT chk_ticket_update_journal_outcome
				CHECK (outcome IN ('updated', 'failed', 'reload_failed'));
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
