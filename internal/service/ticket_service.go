package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"dashboard-service/internal/client"
	"dashboard-service/internal/model"
	"dashboard-service/internal/ticket"
)

type TicketBackend interface {
	ticket.API
	List(ctx context.Context, q client.ListQuery) ([]ticket.Ticket, error)
}

type Journal interface {
	Append(ctx context.Context, entry *model.JournalEntry) error
	ListByTicket(ctx context.Context, ticketUUID string, orgID *uuid.UUID, limit int) ([]model.JournalEntry, error)
}

type TicketPage struct {
	Tickets []TicketView   `json:"tickets"`
	Summary ticket.Summary `json:"summary"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

type TicketUpdateResult struct {
	Ticket        *TicketView           `json:"ticket"`
	Notifications []ticket.Notification `json:"notifications"`
}

type TicketService struct {
	backend TicketBackend
	journal Journal
	log     zerolog.Logger

	mu       sync.Mutex
	updating map[string]struct{}
}

func NewTicketService(backend TicketBackend, journal Journal, log zerolog.Logger) *TicketService {
	return &TicketService{backend: backend, journal: journal, log: log, updating: make(map[string]struct{})}
}

func (s *TicketService) List(ctx context.Context, principal model.Principal, page, perPage int) (*TicketPage, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}
	tickets, err := s.backend.List(client.WithToken(ctx, principal.Token), client.ListQuery{Page: page, PerPage: perPage})
	if err != nil {
		return nil, upstreamErr(err)
	}
	return &TicketPage{
		Tickets: newTicketViews(tickets),
		Summary: ticket.Summarize(tickets),
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (s *TicketService) Get(ctx context.Context, principal model.Principal, ticketUUID string) (*TicketView, error) {
	t, err := s.backend.Get(client.WithToken(ctx, principal.Token), ticketUUID)
	if err != nil {
		return nil, upstreamErr(err)
	}
	return viewOf(&t), nil
}

// Update loads the ticket, submits the form and returns the reloaded ticket.
// Every attempt that reaches the backend is journaled. Only one update per ticket
// runs at a time; a concurrent one gets ticket.ErrBusy.
func (s *TicketService) Update(ctx context.Context, principal model.Principal, ticketUUID string, form ticket.UpdateForm) (*TicketUpdateResult, error) {
	if !principal.CanUpdateTickets() {
		return nil, ErrPermissionDenied
	}
	if !s.claim(ticketUUID) {
		return &TicketUpdateResult{Notifications: []ticket.Notification{{
			Level:   ticket.LevelWarning,
			Message: "an update for this ticket is already in progress",
		}}}, ticket.ErrBusy
	}
	defer s.release(ticketUUID)
	ctx = client.WithToken(ctx, principal.Token)

	detail := ticket.NewDetail(s.backend, ticketUUID)
	if _, err := detail.Load(ctx); err != nil {
		return &TicketUpdateResult{Notifications: detail.Notifications()}, upstreamErr(err)
	}

	updated, err := detail.Submit(ctx, form)
	result := &TicketUpdateResult{Ticket: viewOf(detail.Ticket()), Notifications: detail.Notifications()}

	switch {
	case err == nil:
		s.record(ctx, principal, ticketUUID, form, model.OutcomeUpdated, nil)
		result.Ticket = viewOf(&updated)
		return result, nil
	case errors.Is(err, ticket.ErrStatusRequired), errors.Is(err, ticket.ErrInvalidForm):
		return result, fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, ticket.ErrRefetch):
		s.record(ctx, principal, ticketUUID, form, model.OutcomeReloadFailed, err)
		return result, nil
	default:
		s.record(ctx, principal, ticketUUID, form, model.OutcomeFailed, err)
		return result, upstreamErr(err)
	}
}

// Journal lists the entries recorded under the caller's organization only.
func (s *TicketService) Journal(ctx context.Context, principal model.Principal, ticketUUID string) ([]model.JournalEntry, error) {
	return s.journal.ListByTicket(ctx, ticketUUID, principal.OrgID, 50)
}

func (s *TicketService) claim(ticketUUID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.updating[ticketUUID]; busy {
		return false
	}
	s.updating[ticketUUID] = struct{}{}
	return true
}

func (s *TicketService) release(ticketUUID string) {
	s.mu.Lock()
	delete(s.updating, ticketUUID)
	s.mu.Unlock()
}

func (s *TicketService) record(ctx context.Context, principal model.Principal, ticketUUID string, form ticket.UpdateForm, outcome string, cause error) {
	form = form.Normalize()
	entry := &model.JournalEntry{
		TicketUUID:     ticketUUID,
		Status:         string(form.Status),
		Comment:        form.Comment,
		AttachmentName: form.AttachmentName(),
		UserID:         principal.UserID,
		OrgID:          principal.OrgID,
		Outcome:        outcome,
	}
	if cause != nil {
		msg := cause.Error()
		entry.ErrorMessage = &msg
	}
	if err := s.journal.Append(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Error().Err(err).Str("ticket", ticketUUID).Msg("failed to journal ticket update")
	}
}

func upstreamErr(err error) error {
	if errors.Is(err, client.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
