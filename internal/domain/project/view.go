package project

import (
	"fmt"

	"github.com/gloovup/portal/internal/listing"
)

// View is the project list, searchable by name and client.
var View = listing.View[Project]{
	Search: []func(Project) string{
		func(p Project) string { return p.Name },
		func(p Project) string { return p.Client },
	},
	Filters: map[string]func(Project) string{
		"status": func(p Project) string { return string(p.Status) },
	},
}

// Row is the CSV projection of a project.
type Row struct {
	ID       string `csv:"ID"`
	Name     string `csv:"Name"`
	Client   string `csv:"Client"`
	Status   string `csv:"Status"`
	Deadline string `csv:"Deadline"`
	Progress string `csv:"Progress"`
}

// ToRow projects p onto the export columns.
func ToRow(p Project) Row {
	return Row{
		ID:       p.ID,
		Name:     p.Name,
		Client:   p.Client,
		Status:   string(p.Status),
		Deadline: p.Deadline,
		Progress: fmt.Sprintf("%d%%", p.Progress),
	}
}
