package client

import (
	"strings"

	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
)

// Payment is one invoice settlement in the client payments ledger.
type Payment struct {
	ID     string        `json:"id"`
	Client string        `json:"client"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status"`
	Date   string        `json:"date"`
}

// Payments returns the seed payments ledger.
func Payments() []Payment {
	return []Payment{
		{ID: "PAY-001", Client: "Acme Corp", Amount: 5000, Status: PaymentPaid, Date: "2023-10-15"},
		{ID: "PAY-002", Client: "Globex", Amount: 3200, Status: PaymentPending, Date: "2023-10-20"},
		{ID: "PAY-003", Client: "Soylent Corp", Amount: 1500, Status: PaymentOverdue, Date: "2023-10-01"},
		{ID: "PAY-004", Client: "Umbrella Inc", Amount: 8000, Status: PaymentPaid, Date: "2023-09-25"},
		{ID: "PAY-005", Client: "Cyberdyne", Amount: 4500, Status: PaymentPending, Date: "2023-10-22"},
		{ID: "PAY-006", Client: "Wayne Ent", Amount: 12000, Status: PaymentPaid, Date: "2023-10-05"},
	}
}

// PaymentView searches payments by client and id, filters by status and
// lists the newest payment first.
var PaymentView = listing.View[Payment]{
	Search: []func(Payment) string{
		func(p Payment) string { return p.Client },
		func(p Payment) string { return p.ID },
	},
	Filters: map[string]func(Payment) string{
		"status": func(p Payment) string { return string(p.Status) },
	},
	Compare: func(a, b Payment) int { return strings.Compare(b.Date, a.Date) },
}

// PaymentRow is the CSV projection of a payment.
type PaymentRow struct {
	ID     string `csv:"ID"`
	Client string `csv:"Client"`
	Amount string `csv:"Amount"`
	Status string `csv:"Status"`
	Date   string `csv:"Date"`
}

// ToPaymentRow projects p onto the export columns.
func ToPaymentRow(p Payment) PaymentRow {
	return PaymentRow{
		ID:     p.ID,
		Client: p.Client,
		Amount: export.Amount(p.Amount),
		Status: string(p.Status),
		Date:   p.Date,
	}
}

// PaymentStats summarizes the ledger.
type PaymentStats struct {
	Total       int     `json:"total"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
	Overdue     int     `json:"overdue"`
}

func paymentStats(ledger []Payment) PaymentStats {
	open := func(p Payment) bool { return p.Status != PaymentPaid }
	return PaymentStats{
		Total: len(ledger),
		Collected: listing.Sum(ledger, func(p Payment) float64 {
			if open(p) {
				return 0
			}
			return p.Amount
		}),
		Outstanding: listing.Sum(ledger, func(p Payment) float64 {
			if !open(p) {
				return 0
			}
			return p.Amount
		}),
		Overdue: listing.Count(ledger, func(p Payment) bool { return p.Status == PaymentOverdue }),
	}
}
