package client

import "time"

// Status is the account state of a client.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusArchived Status = "Archived"
)

// Statuses lists every client status in display order.
var Statuses = []Status{StatusActive, StatusInactive, StatusArchived}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusArchived:
		return true
	}
	return false
}

// PaymentStatus is the billing state of a client.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

// File is a document attached to a client account.
type File struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Type string `json:"type"`
}

// Client is an agency customer account.
type Client struct {
	ID            string        `json:"id" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Company       string        `json:"company" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Phone         string        `json:"phone"`
	ManagerID     string        `json:"managerId,omitempty"`
	ProjectsCount int           `json:"projectsCount" validate:"gte=0"`
	TotalBilled   float64       `json:"totalBilled" validate:"gte=0"`
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"enum"`
	Status        Status        `json:"status" validate:"enum"`
	LastActive    time.Time     `json:"lastActive"`
	Notes         string        `json:"notes,omitempty"`
	Files         []File        `json:"files"`
}

// ID returns the identifier of c.
func ID(c Client) string { return c.ID }

// Stats summarizes the client collection.
type Stats struct {
	Total          int     `json:"total"`
	Active         int     `json:"active"`
	PendingPayment int     `json:"pendingPayment"`
	TotalRevenue   float64 `json:"totalRevenue"`
}
