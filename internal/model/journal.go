package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OutcomeUpdated      = "updated"
	OutcomeFailed       = "failed"
	OutcomeReloadFailed = "reload_failed"
)

// JournalEntry records one ticket update attempt made through this service.
type JournalEntry struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TicketUUID     string     `json:"ticket_uuid"`
	Status         string     `json:"status"`
	Comment        string     `json:"comment"`
	AttachmentName string     `json:"attachment_name,omitempty"`
	UserID         uuid.UUID  `gorm:"type:uuid" json:"user_id"`
	OrgID          *uuid.UUID `gorm:"type:uuid" json:"org_id,omitempty"`
	Outcome        string     `json:"outcome"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (JournalEntry) TableName() string {
	return "ticket_update_journal"
}
