// Package app opens every collection and wires the domain services the
// portal's surfaces call into.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/dashboard"
	"github.com/gloovup/portal/internal/domain/notification"
	"github.com/gloovup/portal/internal/domain/project"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/persist"
	"github.com/gloovup/portal/internal/repository"
	"github.com/gloovup/portal/internal/store"
)

// DefaultActor is recorded on audit entries when no actor is configured.
const DefaultActor = "admin_1"

// Options configures New.
type Options struct {
	// Actor is the author of audit entries.
	Actor string
	// Now overrides the clock of every service.
	Now    func() time.Time
	Logger *slog.Logger
}

// App holds the wired domain services.
type App struct {
	Audit         *audit.Service
	Clients       *client.Service
	Projects      *project.Service
	Tickets       *ticket.Service
	Users         *user.Service
	Renewals      *renewal.Service
	Attendance    *attendance.Service
	Notifications *notification.Service
	Dashboard     *dashboard.Service
}

// New rehydrates every collection from kv and builds the services. A nil kv
// keeps all state in memory.
func New(ctx context.Context, kv repository.KVStore, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	actor := opts.Actor
	if actor == "" {
		actor = DefaultActor
	}

	var bridge *persist.Bridge
	if kv != nil {
		bridge = persist.NewBridge(kv, logger.With("component", "persist"))
	}
	storeLogger := logger.With("component", "store")

	entries := store.Open(ctx, bridge, persist.KeyAuditLog, audit.Fixtures(now()), audit.EntryID, storeLogger)
	clients := store.Open(ctx, bridge, persist.KeyClients, client.Fixtures(), client.ID, storeLogger)
	projects := store.Open(ctx, bridge, persist.KeyProjects, project.Fixtures(), project.ID, storeLogger)
	tickets := store.Open(ctx, bridge, persist.KeyTickets, ticket.Fixtures(), ticket.ID, storeLogger)
	users := store.Open(ctx, bridge, persist.KeyUsers, user.Fixtures(), user.ID, storeLogger)
	leave := store.Open(ctx, bridge, persist.KeyLeaveRequests, attendance.LeaveRequests(), attendance.LeaveID, storeLogger)
	prefs := store.Open(ctx, bridge, persist.KeyNotifications, notification.Fixtures(), notification.ID, storeLogger)
	reminders := renewal.OpenReminders(ctx, bridge)

	auditSvc := audit.NewService(entries, actor, logger, audit.WithClock(now))
	a := &App{
		Audit:         auditSvc,
		Clients:       client.NewService(clients, auditSvc, logger, client.WithClock(now)),
		Projects:      project.NewService(projects, auditSvc, logger, project.WithClock(now)),
		Tickets:       ticket.NewService(tickets, user.NewDirectory(users), auditSvc, logger, ticket.WithClock(now)),
		Users:         user.NewService(users, auditSvc, logger, user.WithClock(now)),
		Renewals:      renewal.NewService(reminders, auditSvc, logger, renewal.WithClock(now)),
		Attendance:    attendance.NewService(leave, auditSvc, logger, attendance.WithClock(now)),
		Notifications: notification.NewService(prefs, auditSvc, logger),
	}
	a.Dashboard = dashboard.NewService(dashboard.Sources{
		Projects:   a.Projects,
		Tickets:    a.Tickets,
		Clients:    a.Clients,
		Attendance: a.Attendance,
		Renewals:   a.Renewals,
		Audit:      a.Audit,
	})
	return a
}
