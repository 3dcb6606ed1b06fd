package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `gloov-portal administers one agency's operational records: clients, projects, tickets, users, renewals, attendance, payroll and notification preferences.

Core concepts:
- Every collection is a list of records keyed by id. Lists are read through search + filters; "All" (or an omitted key) disables a filter.
- Archived clients and users are hidden unless show_archived is set (clients also accept filters.status=Archived).
- Every mutation appends to the audit log (list_audit_log) and is saved before the tool returns.

Rules of engagement:
1) Orient: call get_dashboard, then the *_stats tool of the area you work in.
2) Browse: list_* tools take {search, filters, show_archived}. Unknown filter keys are rejected with INVALID_INPUT.
3) Mutate: archive_* requires confirmation "ARCHIVE" exactly, otherwise CONFIRMATION_REQUIRED.
4) Tickets: pick an assignee from assignee_candidates before assign_ticket.
5) Exports: export_* returns {filename, content} with the CSV of exactly the rows the matching list_* shows.

Errors come back as {code, message, details, recovery_hint} with isError set.

Docs:
- gloov://docs/index
- gloov://docs/concepts
- gloov://docs/workflows
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "gloov://docs/index",
		Name:        "docs_index",
		Title:       "gloov-portal docs index",
		Description: "Entry point: which tools exist per area and what to read next.",
		Content: `# gloov-portal: Agent Docs Index

## Areas

| Area | Read | Write |
|------|------|-------|
| Clients | list_clients, client_stats, export_clients, list_payments, export_payments | create_client, archive_client |
| Projects | list_projects, project_stats, export_projects | update_project_progress, update_project_status |
| Tickets | list_tickets, ticket_stats, ticket_details, assignee_candidates, export_tickets | assign_ticket, update_ticket_status, reset_tickets |
| Users | list_users, user_stats, export_users | create_user, toggle_user_active, change_user_role, archive_user |
| Renewals | list_renewals, renewal_stats, export_renewals | toggle_renewal_reminder, remind_all_renewals |
| Attendance | attendance_overview, list_employees, list_leave_requests, list_payroll | decide_leave_request, export_payroll |
| Notifications | list_notification_preferences | toggle_notification_preference |
| Overview | get_dashboard, list_audit_log | |

## Read next

- gloov://docs/concepts for field meanings and invariants.
- gloov://docs/workflows for common multi-step tasks.
`,
	},
	{
		URI:         "gloov://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Glossary, status values and the rules every mutation keeps.",
		Content: `# Concepts

## Listing
- search is a case-insensitive substring match over each view's search fields.
- filters are exact matches; the value "All" means no filter.
- Results keep insertion order (newest first) except renewals, sorted by days left.

## Invariants
- Client and user emails are unique, compared case-insensitively.
- Archived users cannot be reactivated. Archiving a user also deactivates it.
- Project progress is 0-100; reaching 100 marks the project Completed.
- Closing a ticket stamps its resolution time; reopening clears it.
- Renewals with 7 days or fewer left are critical; 30 days or fewer are a warning.
- Attendance percentage counts Late as attended.

## Audit
Every successful mutation writes one entry with actor, action, target and details. Failed mutations write nothing.
`,
	},
	{
		URI:         "gloov://docs/workflows",
		Name:        "docs_workflows",
		Title:       "Common workflows",
		Description: "Step-by-step recipes for triage, offboarding and month-end tasks.",
		Content: `# Workflows

## Ticket triage
1. list_tickets with filters {"status": "Open", "priority": "High"}.
2. ticket_details to check overdue.
3. assignee_candidates with the department you need, then assign_ticket.

## Offboarding a user
1. list_users with search set to the name.
2. archive_user with confirmation "ARCHIVE".
3. list_audit_log with target_id to confirm.

## Renewal sweep
1. list_renewals; critical items come first.
2. remind_all_renewals with the ids to flag.

## Month end
1. list_payroll to review totals.
2. export_payroll; the export is audited.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
