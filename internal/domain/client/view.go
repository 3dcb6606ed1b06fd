package client

import (
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
)

// View is the client list: searchable by company, contact, and email,
// filterable by status. Archived clients show only on request or under
// the Archived status tab.
var View = listing.View[Client]{
	Search: []func(Client) string{
		func(c Client) string { return c.Company },
		func(c Client) string { return c.Name },
		func(c Client) string { return c.Email },
	},
	Filters: map[string]func(Client) string{
		"status":  func(c Client) string { return string(c.Status) },
		"payment": func(c Client) string { return string(c.PaymentStatus) },
	},
	Archived:      func(c Client) bool { return c.Status == StatusArchived },
	ArchiveFilter: "status",
	ArchiveValue:  string(StatusArchived),
}

// Row is the CSV projection of a client.
type Row struct {
	ID          string `csv:"ID"`
	Company     string `csv:"Company"`
	Contact     string `csv:"Contact"`
	Email       string `csv:"Email"`
	Phone       string `csv:"Phone"`
	Status      string `csv:"Status"`
	Payment     string `csv:"Payment"`
	Projects    int    `csv:"Projects"`
	TotalBilled string `csv:"TotalBilled"`
}

// ToRow projects c onto the export columns.
func ToRow(c Client) Row {
	return Row{
		ID:          c.ID,
		Company:     c.Company,
		Contact:     c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      string(c.Status),
		Payment:     string(c.PaymentStatus),
		Projects:    c.ProjectsCount,
		TotalBilled: export.Amount(c.TotalBilled),
	}
}
