package audit

import "time"

// Action names an administrative action recorded in the audit log.
type Action string

const (
	ActionLogin            Action = "LOGIN"
	ActionCreateUser       Action = "CREATE_USER"
	ActionActivate         Action = "ACTIVATE"
	ActionDeactivate       Action = "DEACTIVATE"
	ActionRoleChange       Action = "ROLE_CHANGE"
	ActionArchive          Action = "ARCHIVE"
	ActionCreateClient     Action = "CREATE_CLIENT"
	ActionArchiveClient    Action = "ARCHIVE_CLIENT"
	ActionProjectProgress  Action = "PROJECT_PROGRESS"
	ActionProjectStatus    Action = "PROJECT_STATUS"
	ActionTicketAssign     Action = "TICKET_ASSIGN"
	ActionTicketStatus     Action = "TICKET_STATUS"
	ActionTicketsReset     Action = "TICKETS_RESET"
	ActionLeaveApprove     Action = "LEAVE_APPROVE"
	ActionLeaveReject      Action = "LEAVE_REJECT"
	ActionExportPayroll    Action = "EXPORT_PAYROLL"
	ActionRenewalReminder  Action = "RENEWAL_REMINDER"
	ActionNotificationPref Action = "NOTIFICATION_PREFERENCE"
)

// Entry is one line of the audit log.
type Entry struct {
	ID        string    `json:"id" validate:"required"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Actor     string    `json:"actor"`
	Action    Action    `json:"action" validate:"required"`
	TargetID  string    `json:"targetId,omitempty"`
	Target    string    `json:"target,omitempty"`
	Details   string    `json:"details,omitempty"`
}

// Event is what a caller reports; the log fills in id, time, and actor.
type Event struct {
	Action   Action
	TargetID string
	Target   string
	Details  string
}

// EntryID returns the identifier of e.
func EntryID(e Entry) string { return e.ID }

// Fixtures returns the entries present before any action is taken.
func Fixtures(now time.Time) []Entry {
	return []Entry{
		{ID: "log1", Timestamp: now.Add(-time.Hour).UTC(), Actor: "u1", Action: ActionLogin, TargetID: "u1", Target: "Alice Admin", Details: "Successful login"},
		{ID: "log2", Timestamp: now.Add(-24 * time.Hour).UTC(), Actor: "u1", Action: ActionRoleChange, TargetID: "u2", Target: "Bob Builder", Details: "Promoted to Manager"},
	}
}
