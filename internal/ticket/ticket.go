package ticket

import (
	"io"
	"time"
)

type Ticket struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	TicketCode  string    `json:"ticket_code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IssueType   string    `json:"issue_type"`
	Priority    string    `json:"priority"`
	Severity    Severity  `json:"severity"`
	Status      Status    `json:"status"`
	CreatedUser string    `json:"created_user"`
	AssignUser  *string   `json:"assign_user,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UpdateForm is the multipart payload accepted by the ticket API.
type UpdateForm struct {
	Status     Status      `validate:"required,ticket_status"`
	Comment    string      `validate:"max=2000"`
	Attachment *Attachment `validate:"-"`
}

func (f UpdateForm) AttachmentName() string {
	if f.Attachment == nil {
		return ""
	}
	return f.Attachment.Filename
}
