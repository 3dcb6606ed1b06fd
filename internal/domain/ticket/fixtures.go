package ticket

import "time"

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// Fixtures returns the seed tickets.
func Fixtures() []Ticket {
	frank := Assignee{ID: "u1", Name: "Frank Fixer", Role: "DevOps", Avatar: "https://i.pravatar.cc/150?u=f"}
	eve := Assignee{ID: "u2", Name: "Eve Engineer", Role: "Backend", Avatar: "https://i.pravatar.cc/150?u=e"}
	alice := Assignee{ID: "u3", Name: "Alice Admin", Role: "Support Lead", Avatar: "https://i.pravatar.cc/150?u=a"}

	return []Ticket{
		{
			ID: "T-1001", Subject: "Production Server Latency", Description: "High latency on API.",
			Client: "Acme Corp", Priority: PriorityHigh, Status: StatusInProgress,
			CreatedAt: at("2023-10-25T08:00:00Z"), AssignedTo: ptr(frank), AssigneeID: frank.ID,
			Attachments: []Attachment{}, SLAHours: 4,
		},
		{
			ID: "T-1002", Subject: "Update Brand Colors", Description: "Update primary button color.",
			Client: "Globex", Priority: PriorityLow, Status: StatusOpen,
			CreatedAt: at("2023-10-24T10:30:00Z"), Attachments: []Attachment{}, SLAHours: 48,
		},
		{
			ID: "T-1003", Subject: "Database Connection Error", Description: "Intermittent connection failures to the read replica DB.",
			Client: "Soylent Corp", Priority: PriorityHigh, Status: StatusReview,
			CreatedAt: at("2023-10-23T14:15:00Z"), AssignedTo: ptr(eve), AssigneeID: eve.ID,
			Attachments: []Attachment{}, SLAHours: 8,
		},
		{
			ID: "T-1004", Subject: "Broken Link on Homepage", Description: `The "Contact Us" link in the footer redirects to a 404 page.`,
			Client: "Umbrella Inc", Priority: PriorityMedium, Status: StatusClosed,
			CreatedAt: at("2023-10-20T09:00:00Z"), ResolvedAt: ptr(at("2023-10-20T11:30:00Z")),
			AssignedTo: ptr(alice), AssigneeID: alice.ID, Attachments: []Attachment{}, SLAHours: 24,
		},
		{
			ID: "T-1005", Subject: "User Export Fails", Description: "Exporting the user list to CSV results in an empty file.",
			Client: "Cyberdyne", Priority: PriorityMedium, Status: StatusInProgress,
			CreatedAt: at("2023-10-25T09:45:00Z"), AssignedTo: ptr(eve), AssigneeID: eve.ID,
			Attachments: []Attachment{}, SLAHours: 24,
		},
		{
			ID: "T-1006", Subject: "New User Onboarding", Description: "Need to set up accounts for 5 new employees.",
			Client: "Massive Dynamic", Priority: PriorityLow, Status: StatusClosed,
			CreatedAt: at("2023-10-15T08:00:00Z"), ResolvedAt: ptr(at("2023-10-15T10:00:00Z")),
			AssignedTo: ptr(alice), AssigneeID: alice.ID, Attachments: []Attachment{}, SLAHours: 48,
		},
	}
}
