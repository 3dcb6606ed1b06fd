package renewal

import (
	"context"

	"github.com/gloovup/portal/internal/domain/audit"
)

// AuditLog records reminder changes.
type AuditLog interface {
	Record(ctx context.Context, event audit.Event) (audit.Entry, error)
}
