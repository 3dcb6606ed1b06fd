package store

import "github.com/google/uuid"

// NewID returns prefix joined to a time-ordered UUID, e.g. "c-0190...".
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}
