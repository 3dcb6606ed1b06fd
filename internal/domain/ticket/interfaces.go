package ticket

import (
	"context"

	"github.com/gloovup/portal/internal/domain/audit"
)

// AuditLog records administrative actions on tickets.
type AuditLog interface {
	Record(ctx context.Context, event audit.Event) (audit.Entry, error)
}

// Directory provides the staff tickets can be assigned to.
type Directory interface {
	FindAssignee(id string) (Assignee, bool)
	SearchAssignees(query string) []Assignee
}
