package project

// Status is the delivery state of a project.
type Status string

const (
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
	StatusDelayed   Status = "Delayed"
	StatusPending   Status = "Pending"
)

// Statuses lists every project status in display order.
var Statuses = []Status{StatusActive, StatusDelayed, StatusCompleted, StatusPending}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusDelayed, StatusPending:
		return true
	}
	return false
}

// MilestoneStatus is the state of one project milestone.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "Pending"
	MilestoneCompleted MilestoneStatus = "Completed"
	MilestoneOverdue   MilestoneStatus = "Overdue"
)

// Valid reports whether s is a known milestone status.
func (s MilestoneStatus) Valid() bool {
	switch s {
	case MilestonePending, MilestoneCompleted, MilestoneOverdue:
		return true
	}
	return false
}

// Milestone is a dated checkpoint within a project.
type Milestone struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Status  MilestoneStatus `json:"status" validate:"enum"`
	DueDate string          `json:"dueDate" validate:"datetime=2006-01-02"`
}

// TeamMember is a person assigned to a project.
type TeamMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// File is a deliverable or document attached to a project.
type File struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
}

// Project is a piece of client work with a deadline and progress.
type Project struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Client      string       `json:"client"`
	Progress    int          `json:"progress" validate:"gte=0,lte=100"`
	Status      Status       `json:"status" validate:"enum"`
	Deadline    string       `json:"deadline" validate:"datetime=2006-01-02"`
	TeamMembers []string     `json:"teamMembers"`
	Description string       `json:"description,omitempty"`
	Milestones  []Milestone  `json:"milestones" validate:"dive"`
	Team        []TeamMember `json:"assignedTeamDetails"`
	Files       []File       `json:"files"`
}

// ID returns the identifier of p.
func ID(p Project) string { return p.ID }

// MilestonesDone returns how many milestones of p are completed.
func (p Project) MilestonesDone() int {
	n := 0
	for _, m := range p.Milestones {
		if m.Status == MilestoneCompleted {
			n++
		}
	}
	return n
}

// Stats summarizes the project collection.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Delayed   int `json:"delayed"`
}
