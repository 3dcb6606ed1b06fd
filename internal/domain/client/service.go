package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/samber/lo"
)

// Service handles client business logic.
type Service struct {
	clients  *store.Store[Client]
	payments []Payment
	audit    AuditLog
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger
}

// NewService creates a new client service.
func NewService(clients *store.Store[Client], auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		clients:  clients,
		payments: Payments(),
		audit:    auditLog,
		now:      time.Now,
		newID:    func() string { return store.NewID("c") },
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateRequest describes a client creation request.
type CreateRequest struct {
	Name      string `json:"name" validate:"required"`
	Company   string `json:"company" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	ManagerID string `json:"manager_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ArchiveRequest describes a client archive request.
type ArchiveRequest struct {
	ID           string `json:"id"`
	Confirmation string `json:"confirmation"`
}

// List returns the clients visible under q.
func (s *Service) List(q listing.Query) ([]Client, error) {
	if err := listing.Validate(q, View); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.clients.Snapshot(), View, q), nil
}

// Get returns a client by id.
func (s *Service) Get(id string) (Client, error) {
	c, ok := s.clients.Find(id)
	if !ok {
		return Client{}, ErrClientNotFound
	}
	return c, nil
}

// Stats summarizes every client, archived included.
func (s *Service) Stats() Stats {
	all := s.clients.Snapshot()
	return Stats{
		Total:          len(all),
		Active:         listing.Count(all, func(c Client) bool { return c.Status == StatusActive }),
		PendingPayment: listing.Count(all, func(c Client) bool { return c.PaymentStatus == PaymentPending }),
		TotalRevenue:   listing.Sum(all, func(c Client) float64 { return c.TotalBilled }),
	}
}

// OutstandingPayments returns the number of clients whose payment is
// Pending or Overdue.
func (s *Service) OutstandingPayments() int {
	return listing.Count(s.clients.Snapshot(), func(c Client) bool {
		return c.PaymentStatus == PaymentPending || c.PaymentStatus == PaymentOverdue
	})
}

// Create validates req and prepends a new active client with pending payment.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := ValidateCreateInput(req); err != nil {
		return Client{}, err
	}

	notes := req.Notes
	if notes == "" {
		notes = "Created via Portal"
	}
	created := Client{
		ID:            s.newID(),
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		ManagerID:     req.ManagerID,
		ProjectsCount: 0,
		TotalBilled:   0,
		PaymentStatus: PaymentPending,
		Status:        StatusActive,
		LastActive:    s.now().UTC(),
		Notes:         notes,
		Files:         []File{},
	}

	if _, err := s.clients.Mutate(ctx, func(items []Client) ([]Client, error) {
		if lo.ContainsBy(items, func(c Client) bool { return sameEmail(c.Email, req.Email) }) {
			return nil, ErrDuplicateEmail
		}
		return store.Prepend(items, created), nil
	}); err != nil {
		return Client{}, err
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionCreateClient,
		TargetID: created.ID,
		Target:   created.Company,
		Details:  fmt.Sprintf("Created client %s", created.Company),
	})
	s.logger.Info("client created", "id", created.ID, "company", created.Company)
	return created, nil
}

// Archive moves a client to the Archived status. The confirmation must be
// exactly ConfirmPhrase; anything else changes nothing. An archived client
// is returned as is and not audited again.
func (s *Service) Archive(ctx context.Context, req ArchiveRequest) (Client, error) {
	if req.Confirmation != ConfirmPhrase {
		return Client{}, ErrConfirmationMismatch
	}

	var (
		archived Client
		already  bool
	)
	if _, err := s.clients.Mutate(ctx, func(items []Client) ([]Client, error) {
		current, ok := store.Find(items, req.ID, ID)
		if !ok {
			return nil, ErrClientNotFound
		}
		if current.Status == StatusArchived {
			archived, already = current, true
			return items, nil
		}
		next, _ := store.Replace(items, req.ID, ID, func(c Client) Client {
			c.Status = StatusArchived
			archived = c
			return c
		})
		return next, nil
	}); err != nil {
		return Client{}, err
	}
	if already {
		return archived, nil
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionArchiveClient,
		TargetID: archived.ID,
		Target:   archived.Company,
		Details:  "Client archived",
	})
	return archived, nil
}

// Export renders the clients visible under q as CSV.
func (s *Service) Export(q listing.Query) (export.File, error) {
	visible, err := s.List(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("clients", s.now(), visible, ToRow)
}

// ListPayments returns the ledger entries visible under q, newest first.
func (s *Service) ListPayments(q listing.Query) ([]Payment, error) {
	if err := listing.Validate(q, PaymentView); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.payments, PaymentView, q), nil
}

// RecentPayments returns up to limit ledger entries, newest first.
func (s *Service) RecentPayments(limit int) []Payment {
	ledger := listing.Apply(s.payments, PaymentView, listing.Query{})
	if limit > 0 && len(ledger) > limit {
		ledger = ledger[:limit]
	}
	return ledger
}

// PaymentStats summarizes the whole ledger.
func (s *Service) PaymentStats() PaymentStats {
	return paymentStats(s.payments)
}

// ExportPayments renders the ledger entries visible under q as CSV.
func (s *Service) ExportPayments(q listing.Query) (export.File, error) {
	visible, err := s.ListPayments(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("payments", s.now(), visible, ToPaymentRow)
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}
