package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/gloovup/portal/internal/store"
)

// Service handles audit log operations.
type Service struct {
	entries *store.Store[Entry]
	actor   string
	now     func() time.Time
	newID   func() string
	logger  *slog.Logger
}

// NewService creates a new audit service recording actions as actor.
func NewService(entries *store.Store[Entry], actor string, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		entries: entries,
		actor:   actor,
		now:     time.Now,
		newID:   func() string { return store.NewID("log") },
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record prepends a new entry for event so the newest entry is first.
func (s *Service) Record(ctx context.Context, event Event) (Entry, error) {
	if event.Action == "" {
		return Entry{}, ErrInvalidEvent
	}
	entry := Entry{
		ID:        s.newID(),
		Timestamp: s.now().UTC(),
		Actor:     s.actor,
		Action:    event.Action,
		TargetID:  event.TargetID,
		Target:    event.Target,
		Details:   event.Details,
	}
	if _, err := s.entries.Mutate(ctx, func(items []Entry) ([]Entry, error) {
		return store.Prepend(items, entry), nil
	}); err != nil {
		return Entry{}, err
	}
	s.logger.Info("audit", "action", entry.Action, "target", entry.TargetID, "actor", entry.Actor)
	return entry, nil
}

// List returns entries newest first, filtered by opts.
func (s *Service) List(opts ListOptions) []Entry {
	entries := s.entries.Snapshot()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if opts.Action != nil && e.Action != *opts.Action {
			continue
		}
		if opts.TargetID != "" && e.TargetID != opts.TargetID {
			continue
		}
		out = append(out, e)
	}
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []Entry{}
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out
}
