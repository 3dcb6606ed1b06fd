// Package dashboard assembles the landing-page summary from the domain
// services.
package dashboard

import (
	"github.com/gloovup/portal/internal/domain/attendance"
	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/client"
	"github.com/gloovup/portal/internal/domain/project"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/listing"
)

// RecentActivityLimit caps the audit entries shown on the dashboard.
const RecentActivityLimit = 5

// ClientPaymentsLimit caps the ledger rows in the client payments panel.
const ClientPaymentsLimit = 4

// Projects provides project figures.
type Projects interface {
	Stats() project.Stats
}

// Tickets provides ticket figures.
type Tickets interface {
	Breakdown(q listing.Query) (listing.Breakdown, error)
	Overdue() []ticket.Ticket
}

// Clients provides client figures.
type Clients interface {
	OutstandingPayments() int
	RecentPayments(limit int) []client.Payment
	PaymentStats() client.PaymentStats
}

// Attendance provides attendance and payroll figures.
type Attendance interface {
	Overview(date string) attendance.Overview
	PayrollSummary() attendance.PayrollSummary
	PendingLeave() int
}

// Renewals provides renewal figures.
type Renewals interface {
	Stats() renewal.Stats
}

// AuditLog lists recent audit entries.
type AuditLog interface {
	List(opts audit.ListOptions) []audit.Entry
}

// Sources groups the services the dashboard reads from. Nil sources
// contribute zero values.
type Sources struct {
	Projects   Projects
	Tickets    Tickets
	Clients    Clients
	Attendance Attendance
	Renewals   Renewals
	Audit      AuditLog
}

// StatusCount is one ticket status with its share of all tickets.
type StatusCount struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// TicketSummary is the ticket panel of the dashboard.
type TicketSummary struct {
	Total      int         `json:"total"`
	Open       StatusCount `json:"open"`
	InProgress StatusCount `json:"inProgress"`
	Closed     StatusCount `json:"closed"`
	Overdue    int         `json:"overdue"`
}

// Summary is everything the dashboard shows.
type Summary struct {
	ProjectsTotal        int                 `json:"projectsTotal"`
	ProjectsActive       int                 `json:"projectsActive"`
	Tickets              TicketSummary       `json:"tickets"`
	AttendancePercentage int                 `json:"attendancePercentage"`
	AttendanceRing       listing.Ring        `json:"attendanceRing"`
	PendingLeave         int                 `json:"pendingLeave"`
	PayrollProcessing    int                 `json:"payrollProcessing"`
	CriticalRenewals     int                 `json:"criticalRenewals"`
	PendingPayments      int                 `json:"pendingPayments"`
	ClientPayments       []client.Payment    `json:"clientPayments"`
	PaymentTotals        client.PaymentStats `json:"paymentTotals"`
	RecentActivity       []audit.Entry       `json:"recentActivity"`
}

// Service builds dashboard summaries.
type Service struct {
	src Sources
}

// NewService creates a new dashboard service.
func NewService(src Sources) *Service {
	return &Service{src: src}
}

// Summary collects the current figures.
func (s *Service) Summary() (Summary, error) {
	out := Summary{RecentActivity: []audit.Entry{}, ClientPayments: []client.Payment{}}

	if s.src.Projects != nil {
		stats := s.src.Projects.Stats()
		out.ProjectsTotal = stats.Total
		out.ProjectsActive = stats.Active
	}
	if s.src.Tickets != nil {
		b, err := s.src.Tickets.Breakdown(listing.Query{})
		if err != nil {
			return Summary{}, err
		}
		out.Tickets = TicketSummary{
			Total:      b.Total,
			Open:       statusCount(b, ticket.StatusOpen),
			InProgress: statusCount(b, ticket.StatusInProgress),
			Closed:     statusCount(b, ticket.StatusClosed),
			Overdue:    len(s.src.Tickets.Overdue()),
		}
	}
	if s.src.Attendance != nil {
		overview := s.src.Attendance.Overview("")
		out.AttendancePercentage = overview.Percentage
		out.AttendanceRing = overview.Ring
		out.PendingLeave = s.src.Attendance.PendingLeave()
		out.PayrollProcessing = s.src.Attendance.PayrollSummary().Processing
	}
	if s.src.Renewals != nil {
		out.CriticalRenewals = s.src.Renewals.Stats().Critical
	}
	if s.src.Clients != nil {
		out.PendingPayments = s.src.Clients.OutstandingPayments()
		out.ClientPayments = s.src.Clients.RecentPayments(ClientPaymentsLimit)
		out.PaymentTotals = s.src.Clients.PaymentStats()
	}
	if s.src.Audit != nil {
		out.RecentActivity = s.src.Audit.List(audit.ListOptions{Limit: RecentActivityLimit})
	}
	return out, nil
}

func statusCount(b listing.Breakdown, status ticket.Status) StatusCount {
	return StatusCount{Count: b.Counts[string(status)], Percentage: b.Percentages[string(status)]}
}
