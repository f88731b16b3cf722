package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dashboard-service/internal/model"
)

const journalTable = "ticket_update_journal"

type JournalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Append(ctx context.Context, entry *model.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByTicket returns the newest entries recorded under orgID first. A nil orgID
// matches only entries written without an organization. A missing table reads as no history.
func (r *JournalRepository) ListByTicket(ctx context.Context, ticketUUID string, orgID *uuid.UUID, limit int) ([]model.JournalEntry, error) {
	if !r.relationExists(ctx, journalTable) {
		return []model.JournalEntry{}, nil
	}
	var entries []model.JournalEntry
	if err := r.listQuery(r.db.WithContext(ctx), ticketUUID, orgID, limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	return entries, nil
}

func (r *JournalRepository) listQuery(tx *gorm.DB, ticketUUID string, orgID *uuid.UUID, limit int) *gorm.DB {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := tx.Model(&model.JournalEntry{}).Where("ticket_uuid = ?", ticketUUID)
	if orgID != nil {
		query = query.Where("org_id = ?", *orgID)
	} else {
		query = query.Where("org_id IS NULL")
	}
	return query.Order("created_at DESC").Limit(limit)
}

func (r *JournalRepository) relationExists(ctx context.Context, name string) bool {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (
			SELECT 1
			FROM pg_catalog.pg_class c
			JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relname = ? AND c.relkind IN ('r','m','v') AND n.nspname = 'public'
		)`, name).
		Scan(&exists).Error
	if err != nil {
		return false
	}
	return exists
}
