package renewal

import (
	"cmp"
	"time"

	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
)

// View is the renewal list, most urgent first.
var View = listing.View[Renewal]{
	Search: []func(Renewal) string{
		func(r Renewal) string { return r.Domain },
		func(r Renewal) string { return r.Provider },
	},
	Filters: map[string]func(Renewal) string{
		"env":  func(r Renewal) string { return string(r.Env) },
		"type": func(r Renewal) string { return string(r.Type) },
	},
	Compare: func(a, b Renewal) int { return cmp.Compare(a.DaysLeft, b.DaysLeft) },
}

// Row is the CSV projection of a renewal.
type Row struct {
	ID         string `csv:"ID"`
	Domain     string `csv:"Domain"`
	Env        string `csv:"Env"`
	Type       string `csv:"Type"`
	RenewDate  string `csv:"RenewDate"`
	DaysLeft   int    `csv:"DaysLeft"`
	Provider   string `csv:"Provider"`
	Cost       string `csv:"Cost"`
	Severity   string `csv:"Severity"`
	RemindedAt string `csv:"RemindedAt"`
}

// ToRow projects it onto the export columns.
func ToRow(it Item) Row {
	row := Row{
		ID:        it.ID,
		Domain:    it.Domain,
		Env:       string(it.Env),
		Type:      string(it.Type),
		RenewDate: it.RenewDate,
		DaysLeft:  it.DaysLeft,
		Provider:  it.Provider,
		Cost:      export.Amount(it.Cost),
		Severity:  string(it.Severity),
	}
	if it.RemindedAt != nil {
		row.RemindedAt = it.RemindedAt.UTC().Format(time.RFC3339)
	}
	return row
}
