package user

import (
	"context"

	"github.com/gloovup/portal/internal/domain/audit"
)

// AuditLog records administrative actions on users.
type AuditLog interface {
	Record(ctx context.Context, event audit.Event) (audit.Entry, error)
}
