package ticket

import "time"

// Status is the workflow state of a support ticket.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusClosed     Status = "Closed"
)

// Statuses lists every ticket status in workflow order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusReview, StatusClosed}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusReview, StatusClosed:
		return true
	}
	return false
}

// Priority is the urgency of a ticket.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Assignee is the staff member a ticket is assigned to.
type Assignee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Attachment is a file attached to a ticket.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size string `json:"size"`
	URL  string `json:"url"`
}

// Ticket is a client support request.
type Ticket struct {
	ID          string       `json:"id" validate:"required"`
	Subject     string       `json:"subject" validate:"required"`
	Description string       `json:"description"`
	Client      string       `json:"client"`
	Priority    Priority     `json:"priority" validate:"enum"`
	Status      Status       `json:"status" validate:"enum"`
	CreatedAt   time.Time    `json:"createdAt" validate:"required"`
	ResolvedAt  *time.Time   `json:"resolvedAt"`
	AssignedTo  *Assignee    `json:"assignedTo"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	Attachments []Attachment `json:"attachments"`
	SLAHours    int          `json:"slaHours" validate:"gte=0"`
}

// ID returns the identifier of t.
func ID(t Ticket) string { return t.ID }

// AssigneeName returns the assignee's name or "Unassigned".
func (t Ticket) AssigneeName() string {
	if t.AssignedTo == nil {
		return "Unassigned"
	}
	return t.AssignedTo.Name
}

// Stats summarizes the ticket collection.
type Stats struct {
	Total        int `json:"total"`
	Open         int `json:"open"`
	HighPriority int `json:"highPriority"`
	Closed       int `json:"closed"`
}

// Details is a ticket with its derived timing figures.
type Details struct {
	Ticket      Ticket    `json:"ticket"`
	Resolution  string    `json:"resolution"`
	SLADeadline time.Time `json:"slaDeadline"`
	Overdue     bool      `json:"overdue"`
}
