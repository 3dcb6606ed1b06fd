package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/export"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/store"
	"github.com/gloovup/portal/internal/validation"
	"github.com/samber/lo"
)

// Service reports attendance and payroll and reviews leave requests.
type Service struct {
	leave     *store.Store[LeaveRequest]
	employees []Employee
	records   []Record
	payroll   []PayrollRecord
	audit     AuditLog
	now       func() time.Time
	logger    *slog.Logger
}

// NewService creates a new attendance service.
func NewService(leave *store.Store[LeaveRequest], auditLog AuditLog, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		leave:     leave,
		employees: Employees(),
		records:   Records(),
		payroll:   Payroll(),
		audit:     auditLog,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DecideRequest is a reviewer's decision on one leave request.
type DecideRequest struct {
	ID       string   `json:"id" validate:"required"`
	Decision Decision `json:"decision" validate:"required,oneof=Approve Reject"`
}

// Employees returns the roster entries visible under q.
func (s *Service) Employees(q listing.Query) ([]Employee, error) {
	if err := listing.Validate(q, EmployeeView); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return listing.Apply(s.employees, EmployeeView, q), nil
}

// OverviewFor is Overview with date checked to be empty or YYYY-MM-DD.
func (s *Service) OverviewFor(date string) (Overview, error) {
	if err := validation.Var(date, "omitempty,datetime="+time.DateOnly); err != nil {
		return Overview{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, date)
	}
	return s.Overview(date), nil
}

// Overview summarizes attendance on date, or across every day when date is
// empty. The percentage counts late arrivals as attended.
func (s *Service) Overview(date string) Overview {
	records := s.records
	if date != "" {
		records = lo.Filter(records, func(r Record, _ int) bool { return r.Date == date })
	}

	byStatus := lo.CountValuesBy(records, func(r Record) Status { return r.Status })
	attended := byStatus[StatusPresent] + byStatus[StatusLate]
	pct := listing.Percent(attended, len(records))

	worked := lo.Filter(records, func(r Record, _ int) bool { return r.HoursWorked != nil })
	avg := 0.0
	if len(worked) > 0 {
		avg = listing.Sum(worked, func(r Record) float64 { return *r.HoursWorked }) / float64(len(worked))
		avg = math.Round(avg*100) / 100
	}

	return Overview{
		Date:         date,
		Total:        len(records),
		Present:      byStatus[StatusPresent],
		Late:         byStatus[StatusLate],
		Absent:       byStatus[StatusAbsent],
		Leave:        byStatus[StatusLeave],
		Percentage:   pct,
		AverageHours: avg,
		Ring:         listing.RingFor(pct, RingRadius, RingStroke),
	}
}

// ListLeave returns the leave requests visible under q with their employees.
func (s *Service) ListLeave(q listing.Query) ([]LeaveItem, error) {
	if err := listing.Validate(q, LeaveView); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	items := lo.Map(s.leave.Snapshot(), func(r LeaveRequest, _ int) LeaveItem { return s.withEmployee(r) })
	return listing.Apply(items, LeaveView, q), nil
}

// PendingLeave returns the number of leave requests awaiting a decision.
func (s *Service) PendingLeave() int {
	return listing.Count(s.leave.Snapshot(), func(r LeaveRequest) bool { return r.Status == LeavePending })
}

// Decide approves or rejects a leave request.
func (s *Service) Decide(ctx context.Context, req DecideRequest) (LeaveItem, error) {
	var status LeaveStatus
	switch req.Decision {
	case DecisionApprove:
		status = LeaveApproved
	case DecisionReject:
		status = LeaveRejected
	default:
		return LeaveItem{}, fmt.Errorf("%w: %q", ErrInvalidDecision, req.Decision)
	}

	var decided LeaveRequest
	if _, err := s.leave.Mutate(ctx, func(items []LeaveRequest) ([]LeaveRequest, error) {
		next, ok := store.Replace(items, req.ID, LeaveID, func(r LeaveRequest) LeaveRequest {
			r.Status = status
			decided = r
			return r
		})
		if !ok {
			return nil, ErrLeaveRequestNotFound
		}
		return next, nil
	}); err != nil {
		return LeaveItem{}, err
	}

	item := s.withEmployee(decided)
	action := audit.ActionLeaveApprove
	if status == LeaveRejected {
		action = audit.ActionLeaveReject
	}
	s.record(ctx, audit.Event{
		Action:   action,
		TargetID: decided.ID,
		Target:   item.Employee.Name,
		Details:  fmt.Sprintf("%s leave request for %s", status, item.Employee.Name),
	})
	return item, nil
}

// Payroll returns the current payroll run.
func (s *Service) Payroll() []PayrollRecord {
	return append([]PayrollRecord(nil), s.payroll...)
}

// PayrollSummary totals the current payroll run.
func (s *Service) PayrollSummary() PayrollSummary {
	byStatus := lo.CountValuesBy(s.payroll, func(p PayrollRecord) PayrollStatus { return p.Status })
	return PayrollSummary{
		Records:    len(s.payroll),
		TotalBase:  listing.Sum(s.payroll, func(p PayrollRecord) float64 { return p.BaseSalary }),
		TotalNet:   listing.Sum(s.payroll, func(p PayrollRecord) float64 { return p.NetPay }),
		Processing: byStatus[PayrollProcessing],
		Paid:       byStatus[PayrollPaid],
		Pending:    byStatus[PayrollPending],
	}
}

// ExportPayroll renders the payroll run as CSV and records the export.
func (s *Service) ExportPayroll(ctx context.Context) (export.File, error) {
	file, err := export.Render("payroll", s.now(), s.payroll, payrollRow(s.employeeName))
	if err != nil {
		return export.File{}, err
	}
	s.record(ctx, audit.Event{
		Action:  audit.ActionExportPayroll,
		Target:  "Payroll",
		Details: fmt.Sprintf("Exported payroll CSV (%d records)", file.Rows),
	})
	return file, nil
}

func (s *Service) withEmployee(r LeaveRequest) LeaveItem {
	e, ok := lo.Find(s.employees, func(e Employee) bool { return e.ID == r.EmployeeID })
	if !ok {
		e = Employee{ID: r.EmployeeID, Name: r.EmployeeID}
	}
	return LeaveItem{LeaveRequest: r, Employee: e}
}

func (s *Service) employeeName(id string) string {
	if e, ok := lo.Find(s.employees, func(e Employee) bool { return e.ID == id }); ok {
		return e.Name
	}
	return id
}

func (s *Service) record(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if _, err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn("failed to record audit entry", "action", event.Action, "error", err)
	}
}
