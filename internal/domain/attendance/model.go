package attendance

import (
	"time"

	"github.com/gloovup/portal/internal/listing"
)

// Status is the attendance mark of one employee on one day.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusLeave   Status = "Leave"
)

// LeaveType is the reason category of a leave request.
type LeaveType string

const (
	LeaveSick     LeaveType = "Sick"
	LeaveVacation LeaveType = "Vacation"
	LeavePersonal LeaveType = "Personal"
)

// Valid reports whether t is a known leave type.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveSick, LeaveVacation, LeavePersonal:
		return true
	}
	return false
}

// LeaveStatus is the review state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

// Valid reports whether s is a known leave status.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected:
		return true
	}
	return false
}

// Decision is a reviewer's answer to a leave request.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
)

// PayrollStatus is the payment state of a payroll run.
type PayrollStatus string

const (
	PayrollPaid       PayrollStatus = "Paid"
	PayrollProcessing PayrollStatus = "Processing"
	PayrollPending    PayrollStatus = "Pending"
)

// Employee is a member of staff tracked by attendance and payroll.
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Team   string `json:"team"`
	Avatar string `json:"avatar,omitempty"`
}

// Record is one day of attendance for an employee.
type Record struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employeeId"`
	Date        string   `json:"date"`
	Status      Status   `json:"status"`
	CheckIn     string   `json:"checkIn,omitempty"`
	CheckOut    string   `json:"checkOut,omitempty"`
	HoursWorked *float64 `json:"hoursWorked,omitempty"`
}

// LeaveRequest is an employee's request for time off.
type LeaveRequest struct {
	ID          string      `json:"id" validate:"required"`
	EmployeeID  string      `json:"employeeId" validate:"required"`
	Type        LeaveType   `json:"type" validate:"enum"`
	FromDate    string      `json:"fromDate" validate:"datetime=2006-01-02"`
	ToDate      string      `json:"toDate" validate:"datetime=2006-01-02"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status" validate:"enum"`
	SubmittedAt time.Time   `json:"submittedAt"`
}

// LeaveID returns the identifier of r.
func LeaveID(r LeaveRequest) string { return r.ID }

// PayrollRecord is one month of pay for an employee.
type PayrollRecord struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employeeId"`
	Month       string        `json:"month"`
	Year        int           `json:"year"`
	BaseSalary  float64       `json:"baseSalary"`
	Bonuses     float64       `json:"bonuses"`
	Deductions  float64       `json:"deductions"`
	NetPay      float64       `json:"netPay"`
	Status      PayrollStatus `json:"status"`
	GeneratedAt string        `json:"generatedAt"`
}

// Overview summarizes attendance over a set of days.
type Overview struct {
	Date         string       `json:"date,omitempty"`
	Total        int          `json:"total"`
	Present      int          `json:"present"`
	Late         int          `json:"late"`
	Absent       int          `json:"absent"`
	Leave        int          `json:"leave"`
	Percentage   int          `json:"percentage"`
	AverageHours float64      `json:"averageHours"`
	Ring         listing.Ring `json:"ring"`
}

// PayrollSummary totals a payroll run.
type PayrollSummary struct {
	Records    int     `json:"records"`
	TotalBase  float64 `json:"totalBase"`
	TotalNet   float64 `json:"totalNet"`
	Processing int     `json:"processing"`
	Paid       int     `json:"paid"`
	Pending    int     `json:"pending"`
}

// LeaveItem is a leave request together with the requesting employee.
type LeaveItem struct {
	LeaveRequest
	Employee Employee `json:"employee"`
}
