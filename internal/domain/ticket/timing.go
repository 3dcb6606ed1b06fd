package ticket

import (
	"fmt"
	"time"
)

// ResolutionOngoing and ResolutionUnknown are reported when a resolution
// time cannot be measured.
const (
	ResolutionOngoing = "Ongoing"
	ResolutionUnknown = "unknown"
)

// Resolution renders the time between start and end as "2d 3h", "5h",
// or "< 1h". A nil end is still ongoing; an end before start is unknown.
func Resolution(start time.Time, end *time.Time) string {
	if end == nil {
		return ResolutionOngoing
	}
	diff := end.Sub(start)
	if diff < 0 {
		return ResolutionUnknown
	}
	hours := int(diff / time.Hour)
	days := hours / 24
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return "< 1h"
	}
}

// SLADeadline is the moment t must be resolved by.
func SLADeadline(t Ticket) time.Time {
	return t.CreatedAt.Add(time.Duration(t.SLAHours) * time.Hour)
}

// Overdue reports whether t is still unresolved past its SLA deadline.
func Overdue(t Ticket, now time.Time) bool {
	return t.Status != StatusClosed && now.After(SLADeadline(t))
}

// Describe derives the timing figures of t as of now.
func Describe(t Ticket, now time.Time) Details {
	return Details{
		Ticket:      t,
		Resolution:  Resolution(t.CreatedAt, t.ResolvedAt),
		SLADeadline: SLADeadline(t),
		Overdue:     Overdue(t, now),
	}
}
