// Package notification manages which alerts the operator receives.
package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/store"
)

// Channel is the delivery channel of a notification.
type Channel string

const (
	ChannelEmail    Channel = "Email"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelPush     Channel = "Push"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelPush:
		return true
	}
	return false
}

// Preference is one notification toggle.
type Preference struct {
	ID      string  `json:"id" validate:"required"`
	Type    Channel `json:"type" validate:"enum"`
	Label   string  `json:"label" validate:"required"`
	Enabled bool    `json:"enabled"`
}

// ID returns the identifier of p.
func ID(p Preference) string { return p.ID }

// ErrPreferenceNotFound indicates the preference doesn't exist.
var ErrPreferenceNotFound = errors.New("notification preference not found")

// AuditLog records preference changes.
type AuditLog interface {
	Record(ctx context.Context, event audit.Event) (audit.Entry, error)
}

// Fixtures returns the default preferences.
func Fixtures() []Preference {
	return []Preference{
		{ID: "1", Type: ChannelEmail, Label: "Project Updates", Enabled: true},
		{ID: "2", Type: ChannelEmail, Label: "New Ticket Alerts", Enabled: true},
		{ID: "3", Type: ChannelPush, Label: "Mentioned in Comment", Enabled: true},
		{ID: "4", Type: ChannelWhatsApp, Label: "Urgent System Alerts", Enabled: false},
		{ID: "5", Type: ChannelEmail, Label: "Weekly Performance Report", Enabled: true},
	}
}

// Service handles notification preferences.
type Service struct {
	prefs  *store.Store[Preference]
	audit  AuditLog
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(prefs *store.Store[Preference], auditLog AuditLog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{prefs: prefs, audit: auditLog, logger: logger}
}

// List returns every preference in display order.
func (s *Service) List() []Preference {
	return s.prefs.Snapshot()
}

// Toggle flips the enabled flag of a preference.
func (s *Service) Toggle(ctx context.Context, id string) (Preference, error) {
	var toggled Preference
	if _, err := s.prefs.Mutate(ctx, func(items []Preference) ([]Preference, error) {
		next, ok := store.Replace(items, id, ID, func(p Preference) Preference {
			p.Enabled = !p.Enabled
			toggled = p
			return p
		})
		if !ok {
			return nil, ErrPreferenceNotFound
		}
		return next, nil
	}); err != nil {
		return Preference{}, err
	}

	state := "disabled"
	if toggled.Enabled {
		state = "enabled"
	}
	if s.audit != nil {
		if _, err := s.audit.Record(ctx, audit.Event{
			Action:   audit.ActionNotificationPref,
			TargetID: toggled.ID,
			Target:   toggled.Label,
			Details:  fmt.Sprintf("%s notifications %s", toggled.Type, state),
		}); err != nil {
			s.logger.Warn("failed to record audit entry", "action", audit.ActionNotificationPref, "error", err)
		}
	}
	return toggled, nil
}
