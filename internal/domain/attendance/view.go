package attendance

import (
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
)

// EmployeeView is the staff roster, searchable by name and role and
// filterable by team.
var EmployeeView = listing.View[Employee]{
	Search: []func(Employee) string{
		func(e Employee) string { return e.Name },
		func(e Employee) string { return e.Role },
	},
	Filters: map[string]func(Employee) string{
		"team": func(e Employee) string { return e.Team },
	},
}

// LeaveView is the leave request list, searchable by employee and reason.
var LeaveView = listing.View[LeaveItem]{
	Search: []func(LeaveItem) string{
		func(r LeaveItem) string { return r.Employee.Name },
		func(r LeaveItem) string { return r.Reason },
	},
	Filters: map[string]func(LeaveItem) string{
		"status": func(r LeaveItem) string { return string(r.Status) },
		"type":   func(r LeaveItem) string { return string(r.Type) },
	},
}

// PayrollRow is the CSV projection of a payroll record.
type PayrollRow struct {
	ID       string `csv:"ID"`
	Employee string `csv:"Employee"`
	Month    string `csv:"Month"`
	Base     string `csv:"Base"`
	Net      string `csv:"Net"`
	Status   string `csv:"Status"`
}

func payrollRow(employeeName func(string) string) func(PayrollRecord) PayrollRow {
	return func(p PayrollRecord) PayrollRow {
		return PayrollRow{
			ID:       p.ID,
			Employee: employeeName(p.EmployeeID),
			Month:    p.Month,
			Base:     export.Amount(p.BaseSalary),
			Net:      export.Amount(p.NetPay),
			Status:   string(p.Status),
		}
	}
}
