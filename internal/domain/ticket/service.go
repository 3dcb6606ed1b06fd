package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/samber/lo"
)

// Service handles ticket business logic.
type Service struct {
	tickets   *store.Store[Ticket]
	directory Directory
	audit     AuditLog
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new ticket service.
func NewService(tickets *store.Store[Ticket], directory Directory, auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		tickets:   tickets,
		directory: directory,
		audit:     auditLog,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssignRequest describes a ticket assignment.
type AssignRequest struct {
	TicketID   string `json:"ticket_id"`
	AssigneeID string `json:"assignee_id"`
}

// List returns the tickets visible under q.
func (s *Service) List(q listing.Query) ([]Ticket, error) {
	if err := listing.Validate(q, View); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.tickets.Snapshot(), View, q), nil
}

// Get returns a ticket by id.
func (s *Service) Get(id string) (Ticket, error) {
	t, ok := s.tickets.Find(id)
	if !ok {
		return Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

// Details returns a ticket with its resolution time and SLA state.
func (s *Service) Details(id string) (Details, error) {
	t, err := s.Get(id)
	if err != nil {
		return Details{}, err
	}
	return Describe(t, s.now()), nil
}

// Stats summarizes every ticket.
func (s *Service) Stats() Stats {
	all := s.tickets.Snapshot()
	return Stats{
		Total:        len(all),
		Open:         listing.Count(all, func(t Ticket) bool { return t.Status == StatusOpen }),
		HighPriority: listing.Count(all, func(t Ticket) bool { return t.Priority == PriorityHigh && t.Status != StatusClosed }),
		Closed:       listing.Count(all, func(t Ticket) bool { return t.Status == StatusClosed }),
	}
}

// Breakdown counts the tickets visible under q per status.
func (s *Service) Breakdown(q listing.Query) (listing.Breakdown, error) {
	visible, err := s.List(q)
	if err != nil {
		return listing.Breakdown{}, err
	}
	values := make([]string, 0, len(Statuses))
	for _, st := range Statuses {
		values = append(values, string(st))
	}
	return listing.BreakdownBy(visible, func(t Ticket) string { return string(t.Status) }, values...), nil
}

// Overdue returns the tickets past their SLA deadline.
func (s *Service) Overdue() []Ticket {
	now := s.now()
	return lo.Filter(s.tickets.Snapshot(), func(t Ticket, _ int) bool { return Overdue(t, now) })
}

// AssigneeCandidates searches the staff a ticket can be assigned to.
func (s *Service) AssigneeCandidates(query string) []Assignee {
	if s.directory == nil {
		return []Assignee{}
	}
	return s.directory.SearchAssignees(query)
}

// Assign sets the assignee of a ticket.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (Ticket, error) {
	if s.directory == nil {
		return Ticket{}, ErrAssigneeNotFound
	}
	assignee, ok := s.directory.FindAssignee(req.AssigneeID)
	if !ok {
		return Ticket{}, fmt.Errorf("%w: %s", ErrAssigneeNotFound, req.AssigneeID)
	}

	var assigned Ticket
	if _, err := s.tickets.Mutate(ctx, func(items []Ticket) ([]Ticket, error) {
		next, ok := store.Replace(items, req.TicketID, ID, func(t Ticket) Ticket {
			a := assignee
			t.AssignedTo = &a
			t.AssigneeID = a.ID
			assigned = t
			return t
		})
		if !ok {
			return nil, ErrTicketNotFound
		}
		return next, nil
	}); err != nil {
		return Ticket{}, err
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionTicketAssign,
		TargetID: assigned.ID,
		Target:   assigned.Subject,
		Details:  fmt.Sprintf("Assigned to %s", assignee.Name),
	})
	return assigned, nil
}

// UpdateStatus moves a ticket to status. Closing stamps the resolution
// time; reopening clears it.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Ticket, error) {
	if !status.Valid() {
		return Ticket{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	now := s.now().UTC()
	var before, after Ticket
	if _, err := s.tickets.Mutate(ctx, func(items []Ticket) ([]Ticket, error) {
		next, ok := store.Replace(items, id, ID, func(t Ticket) Ticket {
			before = t
			t.Status = status
			switch {
			case status == StatusClosed && t.ResolvedAt == nil:
				t.ResolvedAt = &now
			case status != StatusClosed:
				t.ResolvedAt = nil
			}
			after = t
			return t
		})
		if !ok {
			return nil, ErrTicketNotFound
		}
		return next, nil
	}); err != nil {
		return Ticket{}, err
	}

	if before.Status != after.Status {
		s.record(ctx, audit.Event{
			Action:   audit.ActionTicketStatus,
			TargetID: after.ID,
			Target:   after.Subject,
			Details:  fmt.Sprintf("Status changed from %s to %s", before.Status, after.Status),
		})
	}
	return after, nil
}

// Reset discards local ticket changes and restores the fixtures.
func (s *Service) Reset(ctx context.Context) []Ticket {
	tickets := s.tickets.Reset(ctx)
	s.record(ctx, audit.Event{Action: audit.ActionTicketsReset, Details: "Ticket data refreshed"})
	return tickets
}

// Export renders the tickets visible under q as CSV.
func (s *Service) Export(q listing.Query) (export.File, error) {
	visible, err := s.List(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("tickets", s.now(), visible, ToRow)
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}
