package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/user"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/repository/mocks"
	"github.com/gloovup/portal/internal/store"
	"github.com/gloovup/portal/internal/validation"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 10, 26, 9, 30, 0, 0, time.UTC)

func newStore() *store.Store[user.User] {
	return store.Open(context.Background(), nil, "users", user.Fixtures(), user.ID, nil)
}

func newService(t *testing.T, users *store.Store[user.User], auditLog user.AuditLog) *user.Service {
	t.Helper()
	return user.NewService(users, auditLog, nil,
		user.WithClock(func() time.Time { return fixedNow }),
		user.WithIDGenerator(func() string { return "u-new" }),
	)
}

func ids(users []user.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func expectAudit(auditLog *mocks.AuditLog, action audit.Action, targetID, details string) {
	auditLog.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Event) bool {
		return e.Action == action && e.TargetID == targetID && e.Details == details
	})).Return(audit.Entry{}, nil).Once()
}

func TestList(t *testing.T) {
	svc := newService(t, newStore(), nil)

	got, err := svc.List(listing.Query{})
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2", "u3", "u4", "u5", "u7", "u8"}, ids(got))

	got, err = svc.List(listing.Query{ShowArchived: true, Filters: map[string]string{"role": "Employee"}})
	require.NoError(t, err)
	require.Equal(t, []string{"u4", "u5", "u6"}, ids(got))

	got, err = svc.List(listing.Query{Search: "ACME.com"})
	require.NoError(t, err)
	require.Equal(t, []string{"u3"}, ids(got))
}

func TestStats(t *testing.T) {
	svc := newService(t, newStore(), nil)
	require.Equal(t, user.Stats{Total: 8, Active: 6, Employees: 3, Admins: 3}, svc.Stats())
}

func TestCreate(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	expectAudit(auditLog, audit.ActionCreateUser, "u-new", "Created new Employee")
	svc := newService(t, newStore(), auditLog)

	created, err := svc.Create(context.Background(), user.CreateRequest{
		Name:  "  Ivy Intern ",
		Email: "ivy@gloovup.com",
		Role:  user.RoleEmployee,
	})
	require.NoError(t, err)
	require.Equal(t, user.User{
		ID:         "u-new",
		Name:       "Ivy Intern",
		Email:      "ivy@gloovup.com",
		Role:       user.RoleEmployee,
		IsActive:   true,
		Department: user.DefaultDepartment,
		LastLogin:  user.NeverLoggedIn,
		CreatedAt:  "2023-10-26",
	}, created)
	require.Equal(t, 9, svc.Stats().Total)
	auditLog.AssertExpectations(t)
}

func TestCreate_Rejections(t *testing.T) {
	svc := newService(t, newStore(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, user.CreateRequest{Name: "Alias", Email: "ALICE@gloovup.com", Role: user.RoleAdmin})
	require.ErrorIs(t, err, user.ErrDuplicateEmail)

	_, err = svc.Create(ctx, user.CreateRequest{Name: "Zed", Email: "zed@", Role: user.RoleAdmin})
	require.ErrorIs(t, err, user.ErrInvalidInput)
	var fe validation.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "Please enter a valid email address.", fe.Message)

	_, err = svc.Create(ctx, user.CreateRequest{Name: "Zed", Email: "zed@example.com", Role: "Superuser"})
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.Create(ctx, user.CreateRequest{Name: "Z", Email: "zed@example.com", Role: user.RoleClient})
	require.ErrorIs(t, err, user.ErrInvalidInput)

	require.Equal(t, 8, svc.Stats().Total)
}

func TestToggleActive(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	expectAudit(auditLog, audit.ActionActivate, "u4", "User activated")
	expectAudit(auditLog, audit.ActionDeactivate, "u4", "User deactivated")
	svc := newService(t, newStore(), auditLog)
	ctx := context.Background()

	u, err := svc.ToggleActive(ctx, "u4")
	require.NoError(t, err)
	require.True(t, u.IsActive)

	u, err = svc.ToggleActive(ctx, "u4")
	require.NoError(t, err)
	require.False(t, u.IsActive)

	_, err = svc.ToggleActive(ctx, "u6")
	require.ErrorIs(t, err, user.ErrUserArchived)

	_, err = svc.ToggleActive(ctx, "nobody")
	require.ErrorIs(t, err, user.ErrUserNotFound)
	auditLog.AssertExpectations(t)
}

func TestChangeRole(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	expectAudit(auditLog, audit.ActionRoleChange, "u5", "Role changed from Employee to Manager")
	svc := newService(t, newStore(), auditLog)
	ctx := context.Background()

	u, err := svc.ChangeRole(ctx, "u5", user.RoleManager)
	require.NoError(t, err)
	require.Equal(t, user.RoleManager, u.Role)

	u, err = svc.ChangeRole(ctx, "u5", user.RoleManager)
	require.NoError(t, err)
	require.Equal(t, user.RoleManager, u.Role)

	_, err = svc.ChangeRole(ctx, "u5", "Overlord")
	require.ErrorIs(t, err, user.ErrInvalidRole)
	auditLog.AssertExpectations(t)
}

func TestChangeRole_ArchivedRejected(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	svc := newService(t, newStore(), auditLog)

	_, err := svc.ChangeRole(context.Background(), "u6", user.RoleAdmin)
	require.ErrorIs(t, err, user.ErrUserArchived)

	u6, err := svc.Get("u6")
	require.NoError(t, err)
	require.Equal(t, user.RoleEmployee, u6.Role)
	auditLog.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestArchive(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	expectAudit(auditLog, audit.ActionArchive, "u2", "User archived and deactivated")
	svc := newService(t, newStore(), auditLog)
	ctx := context.Background()

	_, err := svc.Archive(ctx, user.ArchiveRequest{ID: "u2", Confirmation: "ARCHIVE "})
	require.ErrorIs(t, err, user.ErrConfirmationMismatch)
	u2, err := svc.Get("u2")
	require.NoError(t, err)
	require.False(t, u2.IsArchived)

	u2, err = svc.Archive(ctx, user.ArchiveRequest{ID: "u2", Confirmation: user.ConfirmPhrase})
	require.NoError(t, err)
	require.True(t, u2.IsArchived)
	require.False(t, u2.IsActive)

	visible, err := svc.List(listing.Query{})
	require.NoError(t, err)
	require.NotContains(t, ids(visible), "u2")
	auditLog.AssertExpectations(t)
}

func TestArchive_AlreadyArchivedRecordsOnce(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	expectAudit(auditLog, audit.ActionArchive, "u2", "User archived and deactivated")
	svc := newService(t, newStore(), auditLog)
	ctx := context.Background()
	req := user.ArchiveRequest{ID: "u2", Confirmation: user.ConfirmPhrase}

	first, err := svc.Archive(ctx, req)
	require.NoError(t, err)
	again, err := svc.Archive(ctx, req)
	require.NoError(t, err)
	require.Equal(t, first, again)

	_, err = svc.Archive(ctx, user.ArchiveRequest{ID: "u6", Confirmation: user.ConfirmPhrase})
	require.NoError(t, err)

	auditLog.AssertExpectations(t)
	auditLog.AssertNumberOfCalls(t, "Record", 1)
}

func TestExport(t *testing.T) {
	svc := newService(t, newStore(), nil)

	file, err := svc.Export(listing.Query{Search: "eve"})
	require.NoError(t, err)
	require.Equal(t, "users_export_2023-10-26.csv", file.Filename)
	require.Equal(t,
		"ID,Name,Email,Role,Department,Status,Archived,Joined\n"+
			"u5,Eve Engineer,eve@gloovup.com,Employee,Engineering,Active,false,2023-05-12\n",
		file.Content)
}

func TestDirectory(t *testing.T) {
	users := newStore()
	dir := user.NewDirectory(users)

	a, ok := dir.FindAssignee("u5")
	require.True(t, ok)
	require.Equal(t, "Eve Engineer", a.Name)
	require.Equal(t, "Engineering", a.Role)

	for _, id := range []string{"u3", "u4", "u6", "missing"} {
		_, ok := dir.FindAssignee(id)
		require.False(t, ok, id)
	}

	got := dir.SearchAssignees("eng")
	require.Len(t, got, 2)
	require.Equal(t, "u2", got[0].ID)
	require.Equal(t, "u5", got[1].ID)

	require.Len(t, dir.SearchAssignees(""), 4)
}
