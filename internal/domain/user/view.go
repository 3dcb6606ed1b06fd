package user

import (
	"strconv"

	"github.com/gloovup/portal/internal/listing"
)

// View is the user list, searchable by name and email. Archived users
// are hidden unless requested.
var View = listing.View[User]{
	Search: []func(User) string{
		func(u User) string { return u.Name },
		func(u User) string { return u.Email },
	},
	Filters: map[string]func(User) string{
		"role":   func(u User) string { return string(u.Role) },
		"status": func(u User) string { return u.Status() },
	},
	Archived: func(u User) bool { return u.IsArchived },
}

// Row is the CSV projection of a user.
type Row struct {
	ID         string `csv:"ID"`
	Name       string `csv:"Name"`
	Email      string `csv:"Email"`
	Role       string `csv:"Role"`
	Department string `csv:"Department"`
	Status     string `csv:"Status"`
	Archived   string `csv:"Archived"`
	Joined     string `csv:"Joined"`
}

// ToRow projects u onto the export columns.
func ToRow(u User) Row {
	return Row{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		Department: u.Department,
		Status:     u.Status(),
		Archived:   strconv.FormatBool(u.IsArchived),
		Joined:     u.CreatedAt,
	}
}
