package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
	ReadOnly    bool
}

func str(description string, enum ...string) map[string]any {
	s := map[string]any{"type": "string", "description": description}
	if len(enum) > 0 {
		s["enum"] = enum
	}
	return s
}

func integer(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func object(props map[string]any, required ...string) map[string]any {
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// listSchema describes ListParams with the filter keys a view accepts.
func listSchema(filters map[string][]string) map[string]any {
	filterProps := make(map[string]any, len(filters))
	for key, values := range filters {
		filterProps[key] = str("Exact match; \"All\" disables the filter", append([]string{"All"}, values...)...)
	}
	return object(map[string]any{
		"search": str("Case-insensitive substring query"),
		"filters": map[string]any{
			"type":                 "object",
			"properties":           filterProps,
			"additionalProperties": false,
		},
		"show_archived": map[string]any{"type": "boolean", "description": "Include archived rows"},
	})
}

var (
	idOnly      = object(map[string]any{"id": str("Record ID")}, "id")
	noArgs      = object(map[string]any{})
	archiveArgs = object(map[string]any{
		"id":           str("Record ID"),
		"confirmation": str("Must be exactly ARCHIVE"),
	}, "id", "confirmation")
)

// buildToolCatalog returns all available MCP tools.
func buildToolCatalog() []ToolDefinition {
	clientFilters := map[string][]string{
		"status":  {"Active", "Inactive", "Archived"},
		"payment": {"Paid", "Pending", "Overdue"},
	}
	paymentFilters := map[string][]string{"status": {"Paid", "Pending", "Overdue"}}
	employeeFilters := map[string][]string{"team": {"Engineering", "Product", "Design"}}
	projectFilters := map[string][]string{"status": {"Active", "Delayed", "Completed", "Pending"}}
	ticketFilters := map[string][]string{
		"status":   {"Open", "In Progress", "Review", "Closed"},
		"priority": {"High", "Medium", "Low"},
	}
	userFilters := map[string][]string{
		"role":   {"Admin", "Manager", "Employee", "Client"},
		"status": {"Active", "Inactive"},
	}
	renewalFilters := map[string][]string{
		"env":  {"prod", "staging", "dev"},
		"type": {"domain", "hosting", "certificate"},
	}
	leaveFilters := map[string][]string{
		"status": {"Pending", "Approved", "Rejected"},
		"type":   {"Sick", "Vacation", "Personal"},
	}

	return []ToolDefinition{
		// Clients
		{Name: "list_clients", Description: "List clients matching search and filters; archived clients are hidden unless show_archived or status=Archived", InputSchema: listSchema(clientFilters), ReadOnly: true},
		{Name: "client_stats", Description: "Client counters: total, active, pending payment, total revenue", InputSchema: noArgs, ReadOnly: true},
		{Name: "create_client", Description: "Register a new active client with pending payment", InputSchema: object(map[string]any{
			"name":       str("Contact name"),
			"company":    str("Company name"),
			"email":      str("Contact email, unique across clients"),
			"phone":      str("Phone number with at least 10 digits"),
			"manager_id": str("Account manager user ID"),
			"notes":      str("Free-form notes"),
		}, "name", "company", "email", "phone")},
		{Name: "archive_client", Description: "Archive a client; requires confirmation ARCHIVE", InputSchema: archiveArgs},
		{Name: "export_clients", Description: "Export the clients visible under the given query as CSV", InputSchema: listSchema(clientFilters), ReadOnly: true},
		{Name: "list_payments", Description: "Client payments ledger, newest first, with collected and outstanding totals", InputSchema: listSchema(paymentFilters), ReadOnly: true},
		{Name: "export_payments", Description: "Export the client payments visible under the given query as CSV", InputSchema: listSchema(paymentFilters), ReadOnly: true},

		// Projects
		{Name: "list_projects", Description: "List projects matching search and status", InputSchema: listSchema(projectFilters), ReadOnly: true},
		{Name: "project_stats", Description: "Project counters with the status breakdown", InputSchema: noArgs, ReadOnly: true},
		{Name: "update_project_progress", Description: "Set project progress (0-100); 100 marks the project Completed", InputSchema: object(map[string]any{
			"id":       str("Project ID"),
			"progress": integer("Progress percentage between 0 and 100"),
		}, "id", "progress")},
		{Name: "update_project_status", Description: "Change a project's status", InputSchema: object(map[string]any{
			"id":     str("Project ID"),
			"status": str("New status", "Active", "Delayed", "Completed", "Pending"),
		}, "id", "status")},
		{Name: "export_projects", Description: "Export the projects visible under the given query as CSV", InputSchema: listSchema(projectFilters), ReadOnly: true},

		// Tickets
		{Name: "list_tickets", Description: "List tickets matching search, status and priority", InputSchema: listSchema(ticketFilters), ReadOnly: true},
		{Name: "ticket_stats", Description: "Ticket counters with the status breakdown of the filtered list", InputSchema: listSchema(ticketFilters), ReadOnly: true},
		{Name: "ticket_details", Description: "Ticket with SLA deadline, overdue flag and resolution time", InputSchema: idOnly, ReadOnly: true},
		{Name: "assignee_candidates", Description: "Active staff who can take tickets, filtered by name or department", InputSchema: object(map[string]any{
			"query": str("Name or department substring"),
		}), ReadOnly: true},
		{Name: "assign_ticket", Description: "Assign a ticket to an active staff member", InputSchema: object(map[string]any{
			"ticket_id":   str("Ticket ID"),
			"assignee_id": str("User ID from assignee_candidates"),
		}, "ticket_id", "assignee_id")},
		{Name: "update_ticket_status", Description: "Move a ticket through its workflow; Closed stamps the resolution time", InputSchema: object(map[string]any{
			"id":     str("Ticket ID"),
			"status": str("New status", "Open", "In Progress", "Review", "Closed"),
		}, "id", "status")},
		{Name: "reset_tickets", Description: "Restore tickets to the seeded set", InputSchema: noArgs},
		{Name: "export_tickets", Description: "Export the tickets visible under the given query as CSV", InputSchema: listSchema(ticketFilters), ReadOnly: true},

		// Users
		{Name: "list_users", Description: "List non-archived users matching search, role and status", InputSchema: listSchema(userFilters), ReadOnly: true},
		{Name: "user_stats", Description: "User counters: total, active, employees, admins", InputSchema: noArgs, ReadOnly: true},
		{Name: "create_user", Description: "Create an active user", InputSchema: object(map[string]any{
			"name":       str("Full name, at least 2 characters"),
			"email":      str("Email, unique across users"),
			"role":       str("Role", "Admin", "Manager", "Employee", "Client"),
			"department": str("Department; defaults to General"),
		}, "name", "email", "role")},
		{Name: "toggle_user_active", Description: "Activate or deactivate a user", InputSchema: idOnly},
		{Name: "change_user_role", Description: "Change a user's role", InputSchema: object(map[string]any{
			"id":   str("User ID"),
			"role": str("New role", "Admin", "Manager", "Employee", "Client"),
		}, "id", "role")},
		{Name: "archive_user", Description: "Archive and deactivate a user; requires confirmation ARCHIVE", InputSchema: archiveArgs},
		{Name: "export_users", Description: "Export the users visible under the given query as CSV", InputSchema: listSchema(userFilters), ReadOnly: true},

		// Renewals
		{Name: "list_renewals", Description: "List domain, hosting and certificate renewals sorted by days left", InputSchema: listSchema(renewalFilters), ReadOnly: true},
		{Name: "renewal_stats", Description: "Renewal counters: total, critical, warning, reminded, total cost", InputSchema: noArgs, ReadOnly: true},
		{Name: "toggle_renewal_reminder", Description: "Set or clear the reminder mark on a renewal", InputSchema: idOnly},
		{Name: "remind_all_renewals", Description: "Mark every given renewal as reminded", InputSchema: object(map[string]any{
			"ids": map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": "Renewal IDs"},
		}, "ids")},
		{Name: "export_renewals", Description: "Export the renewals visible under the given query as CSV", InputSchema: listSchema(renewalFilters), ReadOnly: true},

		// Attendance
		{Name: "attendance_overview", Description: "Daily attendance counts, percentage and average hours", InputSchema: object(map[string]any{
			"date": str("Day as YYYY-MM-DD; omit to summarize every recorded day"),
		}), ReadOnly: true},
		{Name: "list_employees", Description: "Staff roster matching search (name, role) and team", InputSchema: listSchema(employeeFilters), ReadOnly: true},
		{Name: "list_leave_requests", Description: "List leave requests matching search, status and type", InputSchema: listSchema(leaveFilters), ReadOnly: true},
		{Name: "decide_leave_request", Description: "Approve or reject a leave request", InputSchema: object(map[string]any{
			"id":       str("Leave request ID"),
			"decision": str("Decision", "Approve", "Reject"),
		}, "id", "decision")},
		{Name: "list_payroll", Description: "Payroll records with totals", InputSchema: noArgs, ReadOnly: true},
		{Name: "export_payroll", Description: "Export payroll as CSV and record the export in the audit log", InputSchema: noArgs},

		// Notifications
		{Name: "list_notification_preferences", Description: "List notification preferences", InputSchema: noArgs, ReadOnly: true},
		{Name: "toggle_notification_preference", Description: "Enable or disable a notification preference", InputSchema: idOnly},

		// Overview
		{Name: "get_dashboard", Description: "Landing summary across projects, tickets, attendance, renewals and payments", InputSchema: noArgs, ReadOnly: true},
		{Name: "list_audit_log", Description: "Audit entries newest first", InputSchema: object(map[string]any{
			"action":    str("Action name, e.g. ROLE_CHANGE"),
			"target_id": str("Target record ID"),
			"limit":     integer("Maximum number of entries"),
			"offset":    integer("Entries to skip"),
		}), ReadOnly: true},
	}
}

// registerTools adds every catalog tool to server, dispatching through h.
func registerTools(server *sdkmcp.Server, h *Handler, logger *slog.Logger) {
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
			Annotations: &sdkmcp.ToolAnnotations{ReadOnlyHint: def.ReadOnly},
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := h.Handle(ctx, name, args)
			if err != nil {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					logger.Error("tool failed", "tool", name, "error", err)
					apiErr = &APIError{Code: CodeInternal, Message: err.Error()}
				}
				return textResult(apiErr, true)
			}
			return textResult(result, false)
		})
	}
}

func textResult(v any, isError bool) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
		IsError: isError,
	}, nil
}
