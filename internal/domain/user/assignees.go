package user

import (
	"github.com/gloovup/portal/internal/domain/ticket"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/samber/lo"
)

var _ ticket.Directory = (*Directory)(nil)

// Directory exposes active staff as ticket assignees. Clients and
// archived or inactive accounts are never assignable.
type Directory struct {
	users *store.Store[User]
}

// NewDirectory creates a directory over users.
func NewDirectory(users *store.Store[User]) *Directory {
	return &Directory{users: users}
}

// FindAssignee returns the assignable user with id.
func (d *Directory) FindAssignee(id string) (ticket.Assignee, bool) {
	u, ok := d.users.Find(id)
	if !ok || !assignable(u) {
		return ticket.Assignee{}, false
	}
	return toAssignee(u), true
}

// SearchAssignees returns assignable users whose name or department
// contains query.
func (d *Directory) SearchAssignees(query string) []ticket.Assignee {
	matched := lo.Filter(d.users.Snapshot(), func(u User, _ int) bool {
		return assignable(u) && listing.Matches(query, u.Name, u.Department)
	})
	return lo.Map(matched, func(u User, _ int) ticket.Assignee { return toAssignee(u) })
}

func assignable(u User) bool {
	return u.IsActive && !u.IsArchived && u.Role != RoleClient
}

func toAssignee(u User) ticket.Assignee {
	return ticket.Assignee{ID: u.ID, Name: u.Name, Role: u.Department}
}
