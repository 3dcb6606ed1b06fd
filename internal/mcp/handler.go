package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
)

// Handler dispatches MCP commands.
type Handler struct {
	svc Services
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services) *Handler {
	return &Handler{svc: services}
}

// Handle dispatches a tool call to the domain services. Domain errors are
// returned as *APIError where a code applies.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	result, err := h.dispatch(ctx, method, params)
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

func (h *Handler) dispatch(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	// Clients
	case "list_clients":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Clients.List(req.Query())
	case "client_stats":
		return h.svc.Clients.Stats(), nil
	case "create_client":
		var req client.CreateRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Clients.Create(ctx, req)
	case "archive_client":
		var req ArchiveParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Clients.Archive(ctx, client.ArchiveRequest{ID: req.ID, Confirmation: req.Confirmation})
	case "export_clients":
		return h.exportList(params, h.svc.Clients.Export)
	case "list_payments":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		payments, err := h.svc.Clients.ListPayments(req.Query())
		if err != nil {
			return nil, err
		}
		return PaymentsResponse{Payments: payments, Summary: h.svc.Clients.PaymentStats()}, nil
	case "export_payments":
		return h.exportList(params, h.svc.Clients.ExportPayments)

	// Projects
	case "list_projects":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.List(req.Query())
	case "project_stats":
		return ProjectStatsResponse{Stats: h.svc.Projects.Stats(), Breakdown: h.svc.Projects.Breakdown()}, nil
	case "update_project_progress":
		var req ProjectProgressParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.Progress == nil {
			return nil, fmt.Errorf("%w: progress is required", ErrInvalidParams)
		}
		return h.svc.Projects.UpdateProgress(ctx, req.ID, *req.Progress)
	case "update_project_status":
		var req ProjectStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Projects.UpdateStatus(ctx, req.ID, req.Status)
	case "export_projects":
		return h.exportList(params, h.svc.Projects.Export)

	// Tickets
	case "list_tickets":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Tickets.List(req.Query())
	case "ticket_stats":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		breakdown, err := h.svc.Tickets.Breakdown(req.Query())
		if err != nil {
			return nil, err
		}
		return TicketStatsResponse{Stats: h.svc.Tickets.Stats(), Breakdown: breakdown}, nil
	case "ticket_details":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Tickets.Details(req.ID)
	case "assignee_candidates":
		var req AssigneeSearchParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Tickets.AssigneeCandidates(req.Query), nil
	case "assign_ticket":
		var req ticket.AssignRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Tickets.Assign(ctx, req)
	case "update_ticket_status":
		var req TicketStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Tickets.UpdateStatus(ctx, req.ID, req.Status)
	case "reset_tickets":
		restored := h.svc.Tickets.Reset(ctx)
		return ResetResponse{Collection: "tickets", Count: len(restored)}, nil
	case "export_tickets":
		return h.exportList(params, h.svc.Tickets.Export)

	// Users
	case "list_users":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.List(req.Query())
	case "user_stats":
		return h.svc.Users.Stats(), nil
	case "create_user":
		var req user.CreateRequest
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.Create(ctx, req)
	case "toggle_user_active":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.ToggleActive(ctx, req.ID)
	case "change_user_role":
		var req ChangeRoleParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.ChangeRole(ctx, req.ID, req.Role)
	case "archive_user":
		var req ArchiveParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Users.Archive(ctx, user.ArchiveRequest{ID: req.ID, Confirmation: req.Confirmation})
	case "export_users":
		return h.exportList(params, h.svc.Users.Export)

	// Renewals
	case "list_renewals":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Renewals.List(req.Query())
	case "renewal_stats":
		return h.svc.Renewals.Stats(), nil
	case "toggle_renewal_reminder":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Renewals.ToggleReminder(ctx, req.ID)
	case "remind_all_renewals":
		var req RemindAllParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		n, err := h.svc.Renewals.RemindAll(ctx, renewal.RemindAllRequest{IDs: req.IDs})
		if err != nil {
			return nil, err
		}
		return RemindAllResponse{Reminded: n}, nil
	case "export_renewals":
		return h.exportList(params, h.svc.Renewals.Export)

	// Attendance
	case "attendance_overview":
		var req AttendanceOverviewParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.OverviewFor(req.Date)
	case "list_employees":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.Employees(req.Query())
	case "list_leave_requests":
		var req ListParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.ListLeave(req.Query())
	case "decide_leave_request":
		var req DecideLeaveParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Attendance.Decide(ctx, attendance.DecideRequest{ID: req.ID, Decision: req.Decision})
	case "list_payroll":
		return PayrollResponse{Records: h.svc.Attendance.Payroll(), Summary: h.svc.Attendance.PayrollSummary()}, nil
	case "export_payroll":
		return h.svc.Attendance.ExportPayroll(ctx)

	// Notifications
	case "list_notification_preferences":
		return h.svc.Notifications.List(), nil
	case "toggle_notification_preference":
		var req IDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.svc.Notifications.Toggle(ctx, req.ID)

	// Overview
	case "get_dashboard":
		return h.svc.Dashboard.Summary()
	case "list_audit_log":
		var req AuditLogParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := audit.ListOptions{TargetID: req.TargetID, Limit: req.Limit, Offset: req.Offset}
		if req.Action != "" {
			action := audit.Action(req.Action)
			opts.Action = &action
		}
		return h.svc.Audit.List(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
}

// Export renders the named list as CSV under q.
func (h *Handler) Export(ctx context.Context, entity string, q listing.Query) (export.File, error) {
	var (
		file export.File
		err  error
	)
	switch entity {
	case "clients":
		file, err = h.svc.Clients.Export(q)
	case "payments":
		file, err = h.svc.Clients.ExportPayments(q)
	case "projects":
		file, err = h.svc.Projects.Export(q)
	case "tickets":
		file, err = h.svc.Tickets.Export(q)
	case "users":
		file, err = h.svc.Users.Export(q)
	case "renewals", "domains":
		file, err = h.svc.Renewals.Export(q)
	case "payroll":
		file, err = h.svc.Attendance.ExportPayroll(ctx)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownEntity, entity)
	}
	if err != nil {
		return export.File{}, mapError(err)
	}
	return file, nil
}

// View returns the rows of the named page under q.
func (h *Handler) View(ctx context.Context, name string, q listing.Query) (any, error) {
	method, ok := viewMethods[name]
	if !ok {
		return nil, mapError(fmt.Errorf("%w: %s", ErrUnknownEntity, name))
	}
	params, err := json.Marshal(ListParams{Search: q.Search, Filters: q.Filters, ShowArchived: q.ShowArchived})
	if err != nil {
		return nil, err
	}
	return h.Handle(ctx, method, params)
}

// Dashboard returns the landing summary.
func (h *Handler) Dashboard(ctx context.Context) (any, error) {
	return h.Handle(ctx, "get_dashboard", nil)
}

var viewMethods = map[string]string{
	"clients":       "list_clients",
	"projects":      "list_projects",
	"tickets":       "list_tickets",
	"users":         "list_users",
	"renewals":      "list_renewals",
	"payments":      "list_payments",
	"employees":     "list_employees",
	"attendance":    "list_leave_requests",
	"notifications": "list_notification_preferences",
}

// IsView reports whether name is a page served by View.
func IsView(name string) bool {
	_, ok := viewMethods[name]
	return ok
}

// IsView lets the HTTP router tell pages from unknown paths.
func (h *Handler) IsView(name string) bool {
	return IsView(name)
}

// AuditedExport reports whether exporting entity writes an audit entry.
func (h *Handler) AuditedExport(entity string) bool {
	return entity == "payroll"
}

func (h *Handler) exportList(params json.RawMessage, render func(listing.Query) (export.File, error)) (any, error) {
	var req ListParams
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	return render(req.Query())
}

func decodeParams(params json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(params)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}
