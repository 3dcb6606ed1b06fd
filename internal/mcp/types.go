package mcp

import (
	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/project"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/listing"
)

// ListParams selects the rows of a list view.
type ListParams struct {
	Search       string            `json:"search,omitempty"`
	Filters      map[string]string `json:"filters,omitempty"`
	ShowArchived bool              `json:"show_archived,omitempty"`
}

// Query converts p to a listing query.
func (p ListParams) Query() listing.Query {
	return listing.Query{Search: p.Search, Filters: p.Filters, ShowArchived: p.ShowArchived}
}

type IDParams struct {
	ID string `json:"id"`
}

type ArchiveParams struct {
	ID           string `json:"id"`
	Confirmation string `json:"confirmation"`
}

type ProjectProgressParams struct {
	ID       string `json:"id"`
	Progress *int   `json:"progress"`
}

type ProjectStatusParams struct {
	ID     string         `json:"id"`
	Status project.Status `json:"status"`
}

type TicketStatusParams struct {
	ID     string        `json:"id"`
	Status ticket.Status `json:"status"`
}

type AssigneeSearchParams struct {
	Query string `json:"query,omitempty"`
}

type ChangeRoleParams struct {
	ID   string    `json:"id"`
	Role user.Role `json:"role"`
}

type RemindAllParams struct {
	IDs []string `json:"ids"`
}

type AttendanceOverviewParams struct {
	Date string `json:"date,omitempty"`
}

type DecideLeaveParams struct {
	ID       string              `json:"id"`
	Decision attendance.Decision `json:"decision"`
}

type AuditLogParams struct {
	Action   string `json:"action,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// ResetResponse reports a collection restored to its fixtures.
type ResetResponse struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
}

// RemindAllResponse reports how many renewals were newly reminded.
type RemindAllResponse struct {
	Reminded int `json:"reminded"`
}

// PayrollResponse is the payroll run with its totals.
type PayrollResponse struct {
	Records []attendance.PayrollRecord `json:"records"`
	Summary attendance.PayrollSummary  `json:"summary"`
}

// PaymentsResponse is the client payments ledger with its totals.
type PaymentsResponse struct {
	Payments []client.Payment    `json:"payments"`
	Summary  client.PaymentStats `json:"summary"`
}

// TicketStatsResponse pairs ticket counters with the status breakdown.
type TicketStatsResponse struct {
	ticket.Stats
	Breakdown listing.Breakdown `json:"breakdown"`
}

// ProjectStatsResponse pairs project counters with the status breakdown.
type ProjectStatsResponse struct {
	project.Stats
	Breakdown listing.Breakdown `json:"breakdown"`
}
