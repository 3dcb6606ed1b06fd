package attendance

import (
	"context"

	"github.com/gloovup/portal/internal/domain/audit"
)

// AuditLog records leave decisions and payroll exports.
type AuditLog interface {
	Record(ctx context.Context, event audit.Event) (audit.Entry, error)
}
