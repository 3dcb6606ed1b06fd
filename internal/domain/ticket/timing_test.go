package ticket_test

import (
	"testing"
	"time"

	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/stretchr/testify/require"
)

func TestResolution(t *testing.T) {
	start := time.Date(2023, 10, 20, 9, 0, 0, 0, time.UTC)
	after := func(d time.Duration) *time.Time {
		end := start.Add(d)
		return &end
	}

	require.Equal(t, "Ongoing", ticket.Resolution(start, nil))
	require.Equal(t, "< 1h", ticket.Resolution(start, after(59*time.Minute)))
	require.Equal(t, "2h", ticket.Resolution(start, after(150*time.Minute)))
	require.Equal(t, "1d 0h", ticket.Resolution(start, after(24*time.Hour)))
	require.Equal(t, "3d 5h", ticket.Resolution(start, after(77*time.Hour+30*time.Minute)))
	require.Equal(t, "unknown", ticket.Resolution(start, after(-time.Minute)))
}

func TestOverdue(t *testing.T) {
	tk := ticket.Ticket{
		Status:    ticket.StatusOpen,
		CreatedAt: time.Date(2023, 10, 25, 8, 0, 0, 0, time.UTC),
		SLAHours:  4,
	}
	deadline := time.Date(2023, 10, 25, 12, 0, 0, 0, time.UTC)

	require.Equal(t, deadline, ticket.SLADeadline(tk))
	require.False(t, ticket.Overdue(tk, deadline))
	require.True(t, ticket.Overdue(tk, deadline.Add(time.Second)))

	tk.Status = ticket.StatusClosed
	require.False(t, ticket.Overdue(tk, deadline.Add(time.Hour)))
}

func TestDescribe(t *testing.T) {
	closed := ticket.Fixtures()[3]
	d := ticket.Describe(closed, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC))

	require.Equal(t, "2h", d.Resolution)
	require.False(t, d.Overdue)
	require.Equal(t, closed.ID, d.Ticket.ID)
}
