package service

import "dashboard-service/internal/ticket"

// TicketView is a ticket as the UI draws it, with its badges resolved.
type TicketView struct {
	ticket.Ticket
	StatusBadge   ticket.Badge `json:"status_badge"`
	SeverityBadge ticket.Badge `json:"severity_badge"`
}

func NewTicketView(t ticket.Ticket) TicketView {
	return TicketView{
		Ticket:        t,
		StatusBadge:   ticket.StatusInfo(t.Status),
		SeverityBadge: ticket.SeverityInfo(t.Severity),
	}
}

func newTicketViews(tickets []ticket.Ticket) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for _, t := range tickets {
		views = append(views, NewTicketView(t))
	}
	return views
}

func viewOf(t *ticket.Ticket) *TicketView {
	if t == nil {
		return nil
	}
	v := NewTicketView(*t)
	return &v
}
