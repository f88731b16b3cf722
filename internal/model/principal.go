package model

import "github.com/google/uuid"

const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleViewer = "viewer"
)

type Principal struct {
	UserID uuid.UUID
	OrgID  *uuid.UUID
	Role   string
	Token  string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsViewer() bool {
	return p.Role == RoleViewer
}

// CanUpdateTickets reports whether the principal may submit ticket updates.
// An empty role is treated as an agent, matching tokens issued before roles existed.
func (p Principal) CanUpdateTickets() bool {
	return !p.IsViewer()
}

func (p Principal) OrgKey() string {
	if p.OrgID == nil {
		return "global"
	}
	return p.OrgID.String()
}
