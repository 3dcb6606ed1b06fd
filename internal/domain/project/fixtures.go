package project

// Fixtures returns the seed projects.
func Fixtures() []Project {
	alice := TeamMember{ID: "u1", Name: "Alice Admin", Role: "Project Lead", Avatar: "https://i.pravatar.cc/150?u=a"}
	eve := TeamMember{ID: "u5", Name: "Eve Engineer", Role: "Backend", Avatar: "https://i.pravatar.cc/150?u=e"}

	return []Project{
		{
			ID: "P-001", Name: "Website Redesign", Client: "Acme Corp", Progress: 75, Status: StatusActive,
			Deadline: "2023-11-30", TeamMembers: []string{"Alice", "Bob"},
			Description: "Complete overhaul of the corporate website with focus on accessibility and mobile responsiveness.",
			Team:        []TeamMember{alice, {ID: "u2", Name: "Bob Builder", Role: "Frontend Dev", Avatar: "https://i.pravatar.cc/150?u=b"}},
			Milestones: []Milestone{
				{ID: "m1", Title: "Wireframes Approval", Status: MilestoneCompleted, DueDate: "2023-10-01"},
				{ID: "m2", Title: "Frontend Implementation", Status: MilestoneCompleted, DueDate: "2023-10-20"},
				{ID: "m3", Title: "Content Integration", Status: MilestonePending, DueDate: "2023-11-10"},
				{ID: "m4", Title: "Final QA & Launch", Status: MilestonePending, DueDate: "2023-11-30"},
			},
			Files: []File{
				{ID: "f1", Name: "Design_System_v2.pdf", Type: "PDF", Size: "2.4 MB"},
				{ID: "f2", Name: "Assets_Bundle.zip", Type: "ZIP", Size: "15 MB"},
			},
		},
		{
			ID: "P-002", Name: "Mobile App Launch", Client: "Globex", Progress: 40, Status: StatusDelayed,
			Deadline: "2023-12-15", TeamMembers: []string{"Charlie", "Dave", "Eve"},
			Description: "Native iOS and Android application for the new loyalty program.",
			Team: []TeamMember{
				{ID: "u3", Name: "Charlie Code", Role: "Mobile Dev", Avatar: "https://i.pravatar.cc/150?u=c"},
				{ID: "u4", Name: "Dave Designer", Role: "UI/UX", Avatar: "https://i.pravatar.cc/150?u=d"},
				eve,
			},
			Milestones: []Milestone{
				{ID: "m1", Title: "API Specification", Status: MilestoneCompleted, DueDate: "2023-09-15"},
				{ID: "m2", Title: "Beta Release", Status: MilestoneOverdue, DueDate: "2023-10-15"},
				{ID: "m3", Title: "Store Submission", Status: MilestonePending, DueDate: "2023-12-01"},
			},
			Files: []File{
				{ID: "f1", Name: "API_Docs.pdf", Type: "PDF", Size: "1.2 MB"},
				{ID: "f2", Name: "App_Icon_Set.zip", Type: "ZIP", Size: "5 MB"},
			},
		},
		{
			ID: "P-003", Name: "Cloud Migration", Client: "Soylent Corp", Progress: 90, Status: StatusActive,
			Deadline: "2023-10-25", TeamMembers: []string{"Frank"},
			Description: "Migrating legacy on-premise servers to AWS infrastructure.",
			Team:        []TeamMember{{ID: "u6", Name: "Frank Fixer", Role: "DevOps", Avatar: "https://i.pravatar.cc/150?u=f"}},
			Milestones: []Milestone{
				{ID: "m1", Title: "Infrastructure Audit", Status: MilestoneCompleted, DueDate: "2023-08-01"},
				{ID: "m2", Title: "Data Transfer", Status: MilestoneCompleted, DueDate: "2023-09-15"},
				{ID: "m3", Title: "DNS Switchover", Status: MilestonePending, DueDate: "2023-10-25"},
			},
			Files: []File{{ID: "f1", Name: "Migration_Plan.docx", Type: "DOC", Size: "500 KB"}},
		},
		{
			ID: "P-004", Name: "Marketing Dashboard", Client: "Umbrella Inc", Progress: 100, Status: StatusCompleted,
			Deadline: "2023-09-30", TeamMembers: []string{"Alice", "Eve"},
			Description: "Internal dashboard for tracking marketing campaign ROI.",
			Team:        []TeamMember{alice, eve},
			Milestones: []Milestone{
				{ID: "m1", Title: "Requirements", Status: MilestoneCompleted, DueDate: "2023-08-01"},
				{ID: "m2", Title: "Development", Status: MilestoneCompleted, DueDate: "2023-09-01"},
				{ID: "m3", Title: "Handover", Status: MilestoneCompleted, DueDate: "2023-09-30"},
			},
			Files: []File{{ID: "f1", Name: "User_Manual.pdf", Type: "PDF", Size: "3.5 MB"}},
		},
		{ID: "P-005", Name: "E-commerce Platform", Client: "Cyberdyne", Progress: 15, Status: StatusActive, Deadline: "2024-02-28", TeamMembers: []string{"Bob", "Charlie"}, Milestones: []Milestone{}, Team: []TeamMember{}, Files: []File{}},
		{ID: "P-006", Name: "Internal Audit Tool", Client: "Initech", Progress: 60, Status: StatusActive, Deadline: "2023-12-01", TeamMembers: []string{"Dave"}, Milestones: []Milestone{}, Team: []TeamMember{}, Files: []File{}},
		{ID: "P-007", Name: "Social Media Bot", Client: "Massive Dynamic", Progress: 5, Status: StatusPending, Deadline: "2024-03-15", TeamMembers: []string{}, Milestones: []Milestone{}, Team: []TeamMember{}, Files: []File{}},
		{ID: "P-008", Name: "Legacy System Update", Client: "Wayne Ent", Progress: 85, Status: StatusActive, Deadline: "2023-11-10", TeamMembers: []string{"Frank", "Alice"}, Milestones: []Milestone{}, Team: []TeamMember{}, Files: []File{}},
	}
}
