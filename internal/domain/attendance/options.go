package attendance

import "time"

// KPI ring layout.
const (
	RingRadius = 30
	RingStroke = 4
)

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRoster replaces the employee, attendance and payroll fixtures.
func WithRoster(employees []Employee, records []Record, payroll []PayrollRecord) Option {
	return func(s *Service) {
		s.employees = employees
		s.records = records
		s.payroll = payroll
	}
}
