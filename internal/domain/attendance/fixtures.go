package attendance

import "time"

// Employees returns the staff roster.
func Employees() []Employee {
	return []Employee{
		{ID: "e1", Name: "Alice Admin", Role: "Manager", Team: "Engineering", Avatar: "https://i.pravatar.cc/150?u=1"},
		{ID: "e2", Name: "Bob Builder", Role: "Developer", Team: "Product", Avatar: "https://i.pravatar.cc/150?u=2"},
		{ID: "e3", Name: "Charlie Code", Role: "Developer", Team: "Engineering", Avatar: "https://i.pravatar.cc/150?u=3"},
		{ID: "e4", Name: "Dave Designer", Role: "Designer", Team: "Design", Avatar: "https://i.pravatar.cc/150?u=4"},
		{ID: "e5", Name: "Eve Engineer", Role: "QA", Team: "Engineering", Avatar: "https://i.pravatar.cc/150?u=5"},
	}
}

// Records returns the attendance log.
func Records() []Record {
	return []Record{
		{ID: "a1", EmployeeID: "e1", Date: "2023-10-25", Status: StatusPresent, CheckIn: "09:00", CheckOut: "17:00", HoursWorked: hours(8)},
		{ID: "a2", EmployeeID: "e2", Date: "2023-10-25", Status: StatusLate, CheckIn: "09:45", CheckOut: "17:00", HoursWorked: hours(7.25)},
		{ID: "a3", EmployeeID: "e3", Date: "2023-10-25", Status: StatusPresent, CheckIn: "08:55", CheckOut: "17:15", HoursWorked: hours(8.3)},
		{ID: "a4", EmployeeID: "e4", Date: "2023-10-25", Status: StatusAbsent},
		{ID: "a5", EmployeeID: "e1", Date: "2023-10-24", Status: StatusPresent, CheckIn: "09:00", CheckOut: "17:00", HoursWorked: hours(8)},
		{ID: "a6", EmployeeID: "e2", Date: "2023-10-24", Status: StatusPresent, CheckIn: "09:00", CheckOut: "17:00", HoursWorked: hours(8)},
	}
}

// LeaveRequests returns the seed leave requests.
func LeaveRequests() []LeaveRequest {
	return []LeaveRequest{
		{ID: "lr1", EmployeeID: "e4", Type: LeaveSick, FromDate: "2023-10-25", ToDate: "2023-10-26", Reason: "Flu symptoms", Status: LeavePending, SubmittedAt: time.Date(2023, 10, 24, 8, 0, 0, 0, time.UTC)},
		{ID: "lr2", EmployeeID: "e2", Type: LeaveVacation, FromDate: "2023-11-20", ToDate: "2023-11-25", Reason: "Family trip", Status: LeaveApproved, SubmittedAt: time.Date(2023, 10, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "lr3", EmployeeID: "e3", Type: LeavePersonal, FromDate: "2023-10-30", ToDate: "2023-10-30", Reason: "Doctor appointment", Status: LeavePending, SubmittedAt: time.Date(2023, 10, 25, 10, 0, 0, 0, time.UTC)},
	}
}

// Payroll returns the current payroll run.
func Payroll() []PayrollRecord {
	return []PayrollRecord{
		{ID: "pr1", EmployeeID: "e1", Month: "October", Year: 2023, BaseSalary: 6000, Bonuses: 500, Deductions: 1200, NetPay: 5300, Status: PayrollProcessing, GeneratedAt: "2023-10-20"},
		{ID: "pr2", EmployeeID: "e2", Month: "October", Year: 2023, BaseSalary: 5500, Bonuses: 0, Deductions: 1100, NetPay: 4400, Status: PayrollProcessing, GeneratedAt: "2023-10-20"},
		{ID: "pr3", EmployeeID: "e3", Month: "October", Year: 2023, BaseSalary: 5500, Bonuses: 200, Deductions: 1100, NetPay: 4600, Status: PayrollProcessing, GeneratedAt: "2023-10-20"},
		{ID: "pr4", EmployeeID: "e4", Month: "October", Year: 2023, BaseSalary: 5200, Bonuses: 0, Deductions: 1000, NetPay: 4200, Status: PayrollProcessing, GeneratedAt: "2023-10-20"},
	}
}

func hours(h float64) *float64 { return &h }
