// Package listing derives the visible rows of a list view and the summary
// figures shown next to it. Every function here is pure.
package listing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// All is the filter value that matches every record.
const All = "All"

// ErrUnknownFilter is returned when a query names a filter the view does not declare.
var ErrUnknownFilter = errors.New("unknown filter")

// View declares how a record type is searched, filtered, hidden, and ordered.
type View[T any] struct {
	// Search lists the fields matched by the free-text query.
	Search []func(T) string
	// Filters maps a filter name to the field it compares against.
	Filters map[string]func(T) string
	// Archived reports records hidden from the default view.
	Archived func(T) bool
	// ArchiveFilter and ArchiveValue name a filter selection that reveals
	// archived records on its own, such as status=Archived.
	ArchiveFilter string
	ArchiveValue  string
	// Compare orders the result. Nil keeps collection order.
	Compare func(a, b T) int
}

// Query is the user's current selection for a list view.
type Query struct {
	Search       string            `json:"search,omitempty"`
	Filters      map[string]string `json:"filters,omitempty"`
	ShowArchived bool              `json:"show_archived,omitempty"`
}

// Validate rejects filters the view does not declare.
func Validate[T any](q Query, view View[T]) error {
	for name := range q.Filters {
		if _, ok := view.Filters[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownFilter, name)
		}
	}
	return nil
}

// Apply returns the records of items visible under q, in view order.
// Ties in Compare keep their collection order. The result is never nil.
func Apply[T any](items []T, view View[T], q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	active := activeFilters(q.Filters)
	revealArchived := q.ShowArchived ||
		(view.ArchiveFilter != "" && active[view.ArchiveFilter] == view.ArchiveValue)

	out := lo.Filter(items, func(item T, _ int) bool {
		if view.Archived != nil && !revealArchived && view.Archived(item) {
			return false
		}
		return matchesSearch(item, view.Search, needle) && matchesFilters(item, view.Filters, active)
	})
	if view.Compare != nil {
		slices.SortStableFunc(out, view.Compare)
	}
	return out
}

// Matches reports whether a free-text query hits any of fields.
func Matches(query string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	return needle == "" || lo.ContainsBy(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), needle)
	})
}

func matchesSearch[T any](item T, fields []func(T) string, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, fields map[string]func(T) string, active map[string]string) bool {
	for name, want := range active {
		field, ok := fields[name]
		if !ok {
			continue
		}
		if field(item) != want {
			return false
		}
	}
	return true
}

func activeFilters(filters map[string]string) map[string]string {
	return lo.PickBy(filters, func(_ string, value string) bool {
		return value != "" && value != All
	})
}
