package project

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
)

// Service handles project business logic.
type Service struct {
	projects *store.Store[Project]
	audit    AuditLog
	now      func() time.Time
	logger   *slog.Logger
}

// NewService creates a new project service.
func NewService(projects *store.Store[Project], auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{projects: projects, audit: auditLog, now: time.Now, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the projects visible under q.
func (s *Service) List(q listing.Query) ([]Project, error) {
	if err := listing.Validate(q, View); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.projects.Snapshot(), View, q), nil
}

// Get returns a project by id.
func (s *Service) Get(id string) (Project, error) {
	p, ok := s.projects.Find(id)
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}

// Stats summarizes every project.
func (s *Service) Stats() Stats {
	all := s.projects.Snapshot()
	count := func(status Status) int {
		return listing.Count(all, func(p Project) bool { return p.Status == status })
	}
	return Stats{
		Total:     len(all),
		Active:    count(StatusActive),
		Completed: count(StatusCompleted),
		Delayed:   count(StatusDelayed),
	}
}

// Breakdown counts projects per status.
func (s *Service) Breakdown() listing.Breakdown {
	return listing.BreakdownBy(s.projects.Snapshot(), func(p Project) string { return string(p.Status) },
		string(StatusActive), string(StatusDelayed), string(StatusCompleted), string(StatusPending))
}

// UpdateProgress sets the progress of a project. Reaching 100 completes it.
func (s *Service) UpdateProgress(ctx context.Context, id string, progress int) (Project, error) {
	if progress < 0 || progress > 100 {
		return Project{}, ErrInvalidProgress
	}

	var before, after Project
	if _, err := s.projects.Mutate(ctx, func(items []Project) ([]Project, error) {
		next, ok := store.Replace(items, id, ID, func(p Project) Project {
			before = p
			p.Progress = progress
			if progress == 100 {
				p.Status = StatusCompleted
			}
			after = p
			return p
		})
		if !ok {
			return nil, ErrProjectNotFound
		}
		return next, nil
	}); err != nil {
		return Project{}, err
	}

	s.record(ctx, audit.Event{
		Action:   audit.ActionProjectProgress,
		TargetID: after.ID,
		Target:   after.Name,
		Details:  fmt.Sprintf("Progress changed from %d%% to %d%%", before.Progress, after.Progress),
	})
	return after, nil
}

// UpdateStatus sets the status of a project.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Project, error) {
	if !status.Valid() {
		return Project{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var before, after Project
	if _, err := s.projects.Mutate(ctx, func(items []Project) ([]Project, error) {
		next, ok := store.Replace(items, id, ID, func(p Project) Project {
			before = p
			p.Status = status
			after = p
			return p
		})
		if !ok {
			return nil, ErrProjectNotFound
		}
		return next, nil
	}); err != nil {
		return Project{}, err
	}

	if before.Status != after.Status {
		s.record(ctx, audit.Event{
			Action:   audit.ActionProjectStatus,
			TargetID: after.ID,
			Target:   after.Name,
			Details:  fmt.Sprintf("Status changed from %s to %s", before.Status, after.Status),
		})
	}
	return after, nil
}

// Export renders the projects visible under q as CSV.
func (s *Service) Export(q listing.Query) (export.File, error) {
	visible, err := s.List(q)
	if err != nil {
		return export.File{}, err
	}
	return export.Render("projects", s.now(), visible, ToRow)
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}
