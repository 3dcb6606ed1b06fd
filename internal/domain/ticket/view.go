package ticket

import (
	"time"

	"github.com/gloovup/portal/internal/listing"
)

// View is the ticket list, searchable by subject, id, and client.
var View = listing.View[Ticket]{
	Search: []func(Ticket) string{
		func(t Ticket) string { return t.Subject },
		func(t Ticket) string { return t.ID },
		func(t Ticket) string { return t.Client },
	},
	Filters: map[string]func(Ticket) string{
		"status":   func(t Ticket) string { return string(t.Status) },
		"priority": func(t Ticket) string { return string(t.Priority) },
	},
}

// Row is the CSV projection of a ticket.
type Row struct {
	ID       string `csv:"ID"`
	Subject  string `csv:"Subject"`
	Client   string `csv:"Client"`
	Status   string `csv:"Status"`
	Priority string `csv:"Priority"`
	Created  string `csv:"Created"`
	Resolved string `csv:"Resolved"`
	Assignee string `csv:"Assignee"`
}

// ToRow projects t onto the export columns.
func ToRow(t Ticket) Row {
	resolved := ""
	if t.ResolvedAt != nil {
		resolved = t.ResolvedAt.UTC().Format(time.RFC3339)
	}
	return Row{
		ID:       t.ID,
		Subject:  t.Subject,
		Client:   t.Client,
		Status:   string(t.Status),
		Priority: string(t.Priority),
		Created:  t.CreatedAt.UTC().Format(time.RFC3339),
		Resolved: resolved,
		Assignee: t.AssigneeName(),
	}
}
