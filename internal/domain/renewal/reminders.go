package renewal

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/gloovup/portal/internal/persist"
)

var errBlankReminderID = errors.New("blank reminder id")

// Reminders is the persisted set of renewals that have been reminded,
// keyed by renewal id.
type Reminders struct {
	mu     sync.RWMutex
	marks  map[string]time.Time
	bridge *persist.Bridge
}

// OpenReminders rehydrates reminders from bridge. A nil bridge keeps them in
// memory only.
func OpenReminders(ctx context.Context, bridge *persist.Bridge) *Reminders {
	r := &Reminders{marks: map[string]time.Time{}, bridge: bridge}
	if bridge == nil {
		return r
	}
	if marks, ok := persist.Load[map[string]time.Time](ctx, bridge, persist.KeyReminders, checkReminders); ok && marks != nil {
		r.marks = marks
	}
	return r
}

// Get returns when id was reminded.
func (r *Reminders) Get(id string) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	at, ok := r.marks[id]
	return at, ok
}

// Snapshot returns a copy of every reminder.
func (r *Reminders) Snapshot() map[string]time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.marks)
}

// Toggle clears the reminder on id if present, otherwise sets it to at.
// It reports whether id is reminded afterwards.
func (r *Reminders) Toggle(ctx context.Context, id string, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, set := r.marks[id]
	if set {
		delete(r.marks, id)
	} else {
		r.marks[id] = at
	}
	r.persistLocked(ctx)
	return !set
}

// SetAll sets a reminder on every id that has none and returns how many
// were added. Existing reminders keep their timestamp.
func (r *Reminders) SetAll(ctx context.Context, ids []string, at time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for _, id := range ids {
		if _, ok := r.marks[id]; ok {
			continue
		}
		r.marks[id] = at
		added++
	}
	if added > 0 {
		r.persistLocked(ctx)
	}
	return added
}

func (r *Reminders) persistLocked(ctx context.Context) {
	if r.bridge == nil {
		return
	}
	r.bridge.Save(ctx, persist.KeyReminders, r.marks)
}

func checkReminders(marks map[string]time.Time) error {
	for id := range marks {
		if id == "" {
			return errBlankReminderID
		}
	}
	return nil
}
