package renewal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/samber/lo"
)

// Service lists renewals and tracks which ones have been reminded.
type Service struct {
	renewals  []Renewal
	reminders *Reminders
	audit     AuditLog
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new renewal service over the fixture renewals.
func NewService(reminders *Reminders, auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if reminders == nil {
		reminders = OpenReminders(context.Background(), nil)
	}
	s := &Service{
		renewals:  Fixtures(),
		reminders: reminders,
		audit:     auditLog,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RemindAllRequest selects the renewals to mark as reminded.
type RemindAllRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// List returns the renewals visible under q, most urgent first.
func (s *Service) List(q listing.Query) ([]Item, error) {
	if err := listing.Validate(q, View); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	visible := listing.Apply(slices.Clone(s.renewals), View, q)
	return lo.Map(visible, func(r Renewal, _ int) Item { return s.decorate(r) }), nil
}

// Get returns a renewal by id.
func (s *Service) Get(id string) (Item, error) {
	r, ok := store.Find(s.renewals, id, ID)
	if !ok {
		return Item{}, ErrRenewalNotFound
	}
	return s.decorate(r), nil
}

// Stats summarizes every tracked renewal.
func (s *Service) Stats() Stats {
	marks := s.reminders.Snapshot()
	return Stats{
		Total:     len(s.renewals),
		Critical:  listing.Count(s.renewals, func(r Renewal) bool { return SeverityOf(r.DaysLeft) == SeverityCritical }),
		Warning:   listing.Count(s.renewals, func(r Renewal) bool { return SeverityOf(r.DaysLeft) == SeverityWarning }),
		Reminded:  listing.Count(s.renewals, func(r Renewal) bool { _, ok := marks[r.ID]; return ok }),
		TotalCost: listing.Sum(s.renewals, func(r Renewal) float64 { return r.Cost }),
	}
}

// ToggleReminder sets the reminder on id when unset and clears it when set.
func (s *Service) ToggleReminder(ctx context.Context, id string) (Item, error) {
	r, ok := store.Find(s.renewals, id, ID)
	if !ok {
		return Item{}, ErrRenewalNotFound
	}

	details := "Reminder removed"
	if s.reminders.Toggle(ctx, id, s.now().UTC()) {
		details = "Reminder set"
	}
	s.record(ctx, audit.Event{
		Action:   audit.ActionRenewalReminder,
		TargetID: r.ID,
		Target:   r.Domain,
		Details:  details,
	})
	return s.decorate(r), nil
}

// RemindAll marks every listed renewal as reminded, leaving existing
// reminders untouched, and returns how many were newly marked.
func (s *Service) RemindAll(ctx context.Context, req RemindAllRequest) (int, error) {
	if len(req.IDs) == 0 {
		return 0, fmt.Errorf("%w: no renewals selected", ErrInvalidInput)
	}
	if missing, ok := lo.Find(req.IDs, func(id string) bool { return store.IndexOf(s.renewals, id, ID) < 0 }); ok {
		return 0, fmt.Errorf("%w: %s", ErrRenewalNotFound, missing)
	}

	added := s.reminders.SetAll(ctx, lo.Uniq(req.IDs), s.now().UTC())
	if added > 0 {
		s.record(ctx, audit.Event{
			Action:  audit.ActionRenewalReminder,
			Target:  "Domain renewals",
			Details: fmt.Sprintf("%d items marked as reminded", added),
		})
	}
	return added, nil
}

// Export renders the renewals visible under q as CSV.
func (s *Service) Export(q listing.Query) (export.File, error) {
	visible, err := s.List(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("domains", s.now(), visible, ToRow)
}

func (s *Service) decorate(r Renewal) Item {
	it := Item{Renewal: r, Severity: SeverityOf(r.DaysLeft)}
	if at, ok := s.reminders.Get(r.ID); ok {
		it.Reminded = true
		it.RemindedAt = &at
	}
	return it
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}
