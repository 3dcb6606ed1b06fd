package mcp

import (
	"context"
	"log/slog"

	"github.com/gloovup/portal/internal/app"
	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/dashboard"
	"github.com/gloovup/portal/internal/domain/notification"
	"github.com/gloovup/portal/internal/domain/project"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ClientService defines client operations needed by MCP.
type ClientService interface {
	List(q listing.Query) ([]client.Client, error)
	Stats() client.Stats
	Create(ctx context.Context, req client.CreateRequest) (client.Client, error)
	Archive(ctx context.Context, req client.ArchiveRequest) (client.Client, error)
	Export(q listing.Query) (export.File, error)
	ListPayments(q listing.Query) ([]client.Payment, error)
	PaymentStats() client.PaymentStats
	ExportPayments(q listing.Query) (export.File, error)
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	List(q listing.Query) ([]project.Project, error)
	Stats() project.Stats
	Breakdown() listing.Breakdown
	UpdateProgress(ctx context.Context, id string, progress int) (project.Project, error)
	UpdateStatus(ctx context.Context, id string, status project.Status) (project.Project, error)
	Export(q listing.Query) (export.File, error)
}

// TicketService defines ticket operations needed by MCP.
type TicketService interface {
	List(q listing.Query) ([]ticket.Ticket, error)
	Stats() ticket.Stats
	Breakdown(q listing.Query) (listing.Breakdown, error)
	Details(id string) (ticket.Details, error)
	AssigneeCandidates(query string) []ticket.Assignee
	Assign(ctx context.Context, req ticket.AssignRequest) (ticket.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status ticket.Status) (ticket.Ticket, error)
	Reset(ctx context.Context) []ticket.Ticket
	Export(q listing.Query) (export.File, error)
}

// UserService defines user operations needed by MCP.
type UserService interface {
	List(q listing.Query) ([]user.User, error)
	Stats() user.Stats
	Create(ctx context.Context, req user.CreateRequest) (user.User, error)
	ToggleActive(ctx context.Context, id string) (user.User, error)
	ChangeRole(ctx context.Context, id string, role user.Role) (user.User, error)
	Archive(ctx context.Context, req user.ArchiveRequest) (user.User, error)
	Export(q listing.Query) (export.File, error)
}

// RenewalService defines renewal operations needed by MCP.
type RenewalService interface {
	List(q listing.Query) ([]renewal.Item, error)
	Stats() renewal.Stats
	ToggleReminder(ctx context.Context, id string) (renewal.Item, error)
	RemindAll(ctx context.Context, req renewal.RemindAllRequest) (int, error)
	Export(q listing.Query) (export.File, error)
}

// AttendanceService defines attendance, leave and payroll operations needed by MCP.
type AttendanceService interface {
	OverviewFor(date string) (attendance.Overview, error)
	Employees(q listing.Query) ([]attendance.Employee, error)
	ListLeave(q listing.Query) ([]attendance.LeaveItem, error)
	Decide(ctx context.Context, req attendance.DecideRequest) (attendance.LeaveItem, error)
	Payroll() []attendance.PayrollRecord
	PayrollSummary() attendance.PayrollSummary
	ExportPayroll(ctx context.Context) (export.File, error)
}

// NotificationService defines notification preference operations needed by MCP.
type NotificationService interface {
	List() []notification.Preference
	Toggle(ctx context.Context, id string) (notification.Preference, error)
}

// DashboardService builds the landing summary.
type DashboardService interface {
	Summary() (dashboard.Summary, error)
}

// AuditService lists audit entries.
type AuditService interface {
	List(opts audit.ListOptions) []audit.Entry
}

// Services contains all domain services needed by MCP.
type Services struct {
	Clients       ClientService
	Projects      ProjectService
	Tickets       TicketService
	Users         UserService
	Renewals      RenewalService
	Attendance    AttendanceService
	Notifications NotificationService
	Dashboard     DashboardService
	Audit         AuditService
}

// Config contains server configuration.
type Config struct {
	Handler *Handler
	Logger  *slog.Logger
	Version string
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "gloov-portal",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(sessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddReceivingMiddleware(toolTimingMiddleware(logger))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Handler, logger)

	return server
}

// ServicesFromApp exposes the wired portal services to the handler.
func ServicesFromApp(a *app.App) Services {
	return Services{
		Clients:       a.Clients,
		Projects:      a.Projects,
		Tickets:       a.Tickets,
		Users:         a.Users,
		Renewals:      a.Renewals,
		Attendance:    a.Attendance,
		Notifications: a.Notifications,
		Dashboard:     a.Dashboard,
		Audit:         a.Audit,
	}
}
