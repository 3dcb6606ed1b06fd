package client

import "time"

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Fixtures returns the seed client accounts.
func Fixtures() []Client {
	return []Client{
		{
			ID: "c1", Name: "Sarah Connor", Company: "Skynet Systems", Email: "sarah@skynet.com",
			Phone: "+1 (555) 123-4567", ManagerID: "u1", ProjectsCount: 3, TotalBilled: 150000,
			PaymentStatus: PaymentPaid, Status: StatusActive, LastActive: at("2023-10-25T10:00:00Z"),
			Notes: "Key account for Q4. Interested in AI upgrades.",
			Files: []File{
				{Name: "SLA_Agreement_2023.pdf", Size: "2.4 MB", Type: "PDF"},
				{Name: "Billing_Report_Oct.xlsx", Size: "1.1 MB", Type: "XLSX"},
			},
		},
		{
			ID: "c2", Name: "James Bond", Company: "MI6 Operations", Email: "007@mi6.gov.uk",
			Phone: "+44 20 7946 0007", ManagerID: "u2", ProjectsCount: 1, TotalBilled: 50000,
			PaymentStatus: PaymentPending, Status: StatusActive, LastActive: at("2023-10-24T14:30:00Z"),
			Notes: "Requires high security clearance for all team members.",
			Files: []File{},
		},
		{
			ID: "c3", Name: "Bruce Wayne", Company: "Wayne Enterprises", Email: "bruce@wayne.com",
			Phone: "+1 (555) 999-8888", ManagerID: "u1", ProjectsCount: 5, TotalBilled: 500000,
			PaymentStatus: PaymentOverdue, Status: StatusActive, LastActive: at("2023-10-20T09:15:00Z"),
			Notes: "Payment overdue by 15 days. Accounting team notified.",
			Files: []File{{Name: "Invoice_INV-2023-001.pdf", Size: "500 KB", Type: "PDF"}},
		},
		{
			ID: "c4", Name: "Tony Stark", Company: "Stark Industries", Email: "tony@stark.com",
			Phone: "+1 (555) 300-3000", ManagerID: "u3", ProjectsCount: 12, TotalBilled: 1200000,
			PaymentStatus: PaymentPaid, Status: StatusInactive, LastActive: at("2023-09-15T10:00:00Z"),
			Notes: "Contract paused pending renegotiation.",
			Files: []File{},
		},
		{
			ID: "c5", Name: "Ellen Ripley", Company: "Weyland-Yutani", Email: "ripley@weyland.com",
			Phone: "+1 (555) 426-1979", ManagerID: "u2", ProjectsCount: 2, TotalBilled: 75000,
			PaymentStatus: PaymentPaid, Status: StatusArchived, LastActive: at("2023-01-01T00:00:00Z"),
			Notes: "Client account archived after project completion.",
			Files: []File{},
		},
	}
}
