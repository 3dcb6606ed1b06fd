package audit

import "context"

// Recorder appends events to the audit log. Domain services depend on this
// rather than on Service.
type Recorder interface {
	Record(ctx context.Context, event Event) (Entry, error)
}
