package ticket_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/repository/mocks"
	"github.com/gloovup/portal/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 10, 25, 14, 0, 0, 0, time.UTC)

type stubDirectory struct {
	staff []ticket.Assignee
}

func (d stubDirectory) FindAssignee(id string) (ticket.Assignee, bool) {
	for _, a := range d.staff {
		if a.ID == id {
			return a, true
		}
	}
	return ticket.Assignee{}, false
}

func (d stubDirectory) SearchAssignees(query string) []ticket.Assignee {
	out := []ticket.Assignee{}
	for _, a := range d.staff {
		if listing.Matches(query, a.Name, a.Role) {
			out = append(out, a)
		}
	}
	return out
}

var directory = stubDirectory{staff: []ticket.Assignee{
	{ID: "u5", Name: "Eve Engineer", Role: "Engineering"},
	{ID: "u8", Name: "Harry HR", Role: "HR"},
}}

func newService(t *testing.T, tickets []ticket.Ticket, auditLog ticket.AuditLog) *ticket.Service {
	t.Helper()
	s := store.Open(context.Background(), nil, "tickets", tickets, ticket.ID, nil)
	return ticket.NewService(s, directory, auditLog, nil,
		ticket.WithClock(func() time.Time { return fixedNow }))
}

func ids(tickets []ticket.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestOpenClosedScenario(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "A", Subject: "first", Status: ticket.StatusOpen, Priority: ticket.PriorityLow, CreatedAt: fixedNow},
		{ID: "B", Subject: "second", Status: ticket.StatusClosed, Priority: ticket.PriorityLow, CreatedAt: fixedNow},
		{ID: "C", Subject: "third", Status: ticket.StatusOpen, Priority: ticket.PriorityLow, CreatedAt: fixedNow},
	}
	svc := newService(t, tickets, nil)

	open, err := svc.List(listing.Query{Filters: map[string]string{"status": "Open"}})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, ids(open))

	b, err := svc.Breakdown(listing.Query{})
	require.NoError(t, err)
	require.Equal(t, 2, b.Counts["Open"])
	require.Equal(t, 1, b.Counts["Closed"])
	require.Equal(t, 0, b.Counts["Review"])
	require.Equal(t, 67, b.Percentages["Open"])
}

func TestList_SearchSubjectIDClient(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)

	for query, want := range map[string][]string{
		"latency":  {"T-1001"},
		"t-1004":   {"T-1004"},
		"cyberdyn": {"T-1005"},
	} {
		got, err := svc.List(listing.Query{Search: query})
		require.NoError(t, err)
		require.Equal(t, want, ids(got), query)
	}

	high, err := svc.List(listing.Query{Filters: map[string]string{"priority": "High", "status": listing.All}})
	require.NoError(t, err)
	require.Equal(t, []string{"T-1001", "T-1003"}, ids(high))
}

func TestStats(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)
	require.Equal(t, ticket.Stats{Total: 6, Open: 1, HighPriority: 2, Closed: 2}, svc.Stats())
}

func TestAssign(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	auditLog.On("Record", mock.Anything, audit.Event{
		Action:   audit.ActionTicketAssign,
		TargetID: "T-1002",
		Target:   "Update Brand Colors",
		Details:  "Assigned to Eve Engineer",
	}).Return(audit.Entry{}, nil)
	svc := newService(t, ticket.Fixtures(), auditLog)

	assigned, err := svc.Assign(context.Background(), ticket.AssignRequest{TicketID: "T-1002", AssigneeID: "u5"})
	require.NoError(t, err)
	require.Equal(t, "u5", assigned.AssigneeID)
	require.Equal(t, "Eve Engineer", assigned.AssignedTo.Name)

	untouched, err := svc.Get("T-1001")
	require.NoError(t, err)
	require.Equal(t, ticket.Fixtures()[0], untouched)
	auditLog.AssertExpectations(t)
}

func TestAssign_Rejections(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)
	ctx := context.Background()

	_, err := svc.Assign(ctx, ticket.AssignRequest{TicketID: "T-1002", AssigneeID: "nobody"})
	require.ErrorIs(t, err, ticket.ErrAssigneeNotFound)

	_, err = svc.Assign(ctx, ticket.AssignRequest{TicketID: "T-9999", AssigneeID: "u5"})
	require.ErrorIs(t, err, ticket.ErrTicketNotFound)
}

func TestAssigneeCandidates(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)

	require.Len(t, svc.AssigneeCandidates(""), 2)
	got := svc.AssigneeCandidates("hr")
	require.Len(t, got, 1)
	require.Equal(t, "u8", got[0].ID)
}

func TestUpdateStatus_ClosingStampsResolution(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)
	ctx := context.Background()

	closed, err := svc.UpdateStatus(ctx, "T-1001", ticket.StatusClosed)
	require.NoError(t, err)
	require.NotNil(t, closed.ResolvedAt)
	require.Equal(t, fixedNow, *closed.ResolvedAt)

	details, err := svc.Details("T-1001")
	require.NoError(t, err)
	require.Equal(t, "6h", details.Resolution)
	require.False(t, details.Overdue)

	reopened, err := svc.UpdateStatus(ctx, "T-1001", ticket.StatusReview)
	require.NoError(t, err)
	require.Nil(t, reopened.ResolvedAt)

	_, err = svc.UpdateStatus(ctx, "T-1001", "Resolved")
	require.ErrorIs(t, err, ticket.ErrInvalidStatus)
}

func TestOverdueTickets(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)

	// As of 14:00 on Oct 25: T-1001 (4h from 08:00) and T-1003 (8h from Oct 23) are late.
	require.Equal(t, []string{"T-1001", "T-1003"}, ids(svc.Overdue()))
}

func TestReset(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)
	ctx := context.Background()
	_, err := svc.UpdateStatus(ctx, "T-1002", ticket.StatusClosed)
	require.NoError(t, err)

	restored := svc.Reset(ctx)
	require.Equal(t, ticket.Fixtures(), restored)
}

func TestExport(t *testing.T) {
	svc := newService(t, ticket.Fixtures(), nil)

	file, err := svc.Export(listing.Query{Filters: map[string]string{"status": "Closed"}})
	require.NoError(t, err)
	require.Equal(t, "tickets_export_2023-10-25.csv", file.Filename)

	lines := strings.Split(strings.TrimSpace(file.Content), "\n")
	require.Equal(t, "ID,Subject,Client,Status,Priority,Created,Resolved,Assignee", lines[0])
	require.Equal(t, "T-1004,Broken Link on Homepage,Umbrella Inc,Closed,Medium,2023-10-20T09:00:00Z,2023-10-20T11:30:00Z,Alice Admin", lines[1])
	require.Len(t, lines, 3)

	open, err := svc.Export(listing.Query{Filters: map[string]string{"status": "Open"}})
	require.NoError(t, err)
	require.Contains(t, open.Content, ",Unassigned\n")
}
