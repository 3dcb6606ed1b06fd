package renewal_test

import (
	"context"
	"testing"
	"time"

	"github.com/gloovup/portal/internal/domain/audit"
	"github.com/gloovup/portal/internal/domain/renewal"
	"github.com/gloovup/portal/internal/listing"
	"github.com/gloovup/portal/internal/persist"
	"github.com/gloovup/portal/internal/repository/mocks"
	"github.com/gloovup/portal/internal/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 11, 10, 12, 0, 0, 0, time.UTC)

func newBridge(t *testing.T) *persist.Bridge {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })
	return persist.NewBridge(sqlite.NewKVRepository(db), nil)
}

func newService(reminders *renewal.Reminders, auditLog renewal.AuditLog) *renewal.Service {
	return renewal.NewService(reminders, auditLog, nil,
		renewal.WithClock(func() time.Time { return fixedNow }))
}

func ids(items []renewal.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestSeverityOf(t *testing.T) {
	require.Equal(t, renewal.SeverityCritical, renewal.SeverityOf(0))
	require.Equal(t, renewal.SeverityCritical, renewal.SeverityOf(7))
	require.Equal(t, renewal.SeverityWarning, renewal.SeverityOf(8))
	require.Equal(t, renewal.SeverityWarning, renewal.SeverityOf(30))
	require.Equal(t, renewal.SeverityGood, renewal.SeverityOf(31))
}

func TestList_SortedByUrgency(t *testing.T) {
	svc := newService(nil, nil)

	got, err := svc.List(listing.Query{})
	require.NoError(t, err)
	require.Equal(t, []string{"d5", "d1", "d2", "d3", "d4", "d6"}, ids(got))
	require.Equal(t, renewal.SeverityCritical, got[0].Severity)

	got, err = svc.List(listing.Query{Search: "gloov"})
	require.NoError(t, err)
	require.Equal(t, []string{"d1", "d2", "d3", "d6"}, ids(got))

	got, err = svc.List(listing.Query{Search: "aws"})
	require.NoError(t, err)
	require.Equal(t, []string{"d2"}, ids(got))

	got, err = svc.List(listing.Query{Filters: map[string]string{"env": "prod", "type": "hosting"}})
	require.NoError(t, err)
	require.Equal(t, []string{"d5"}, ids(got))

	got, err = svc.List(listing.Query{Search: "example.org"})
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotNil(t, got)
}

func TestList_StableForEqualDaysLeft(t *testing.T) {
	svc := renewal.NewService(nil, nil, nil, renewal.WithRenewals([]renewal.Renewal{
		{ID: "b", Domain: "b.com", DaysLeft: 10},
		{ID: "a", Domain: "a.com", DaysLeft: 10},
		{ID: "c", Domain: "c.com", DaysLeft: 1},
	}))

	first, err := svc.List(listing.Query{})
	require.NoError(t, err)
	second, err := svc.List(listing.Query{})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, ids(first))
	require.Equal(t, first, second)
}

func TestToggleReminder(t *testing.T) {
	auditLog := new(mocks.AuditLog)
	auditLog.On("Record", mock.Anything, mock.MatchedBy(func(e audit.Event) bool {
		return e.Action == audit.ActionRenewalReminder && e.TargetID == "d1"
	})).Return(audit.Entry{}, nil).Twice()
	svc := newService(nil, auditLog)
	ctx := context.Background()

	it, err := svc.ToggleReminder(ctx, "d1")
	require.NoError(t, err)
	require.True(t, it.Reminded)
	require.Equal(t, fixedNow, *it.RemindedAt)
	require.Equal(t, 1, svc.Stats().Reminded)

	it, err = svc.ToggleReminder(ctx, "d1")
	require.NoError(t, err)
	require.False(t, it.Reminded)
	require.Nil(t, it.RemindedAt)

	_, err = svc.ToggleReminder(ctx, "d99")
	require.ErrorIs(t, err, renewal.ErrRenewalNotFound)
	auditLog.AssertExpectations(t)
}

func TestRemindAll_OnlySetsUnset(t *testing.T) {
	bridge := newBridge(t)
	ctx := context.Background()
	earlier := fixedNow.Add(-48 * time.Hour)
	bridge.Save(ctx, persist.KeyReminders, map[string]time.Time{"d2": earlier})

	svc := newService(renewal.OpenReminders(ctx, bridge), nil)

	added, err := svc.RemindAll(ctx, renewal.RemindAllRequest{IDs: []string{"d1", "d2", "d5", "d1"}})
	require.NoError(t, err)
	require.Equal(t, 2, added)

	d2, err := svc.Get("d2")
	require.NoError(t, err)
	require.Equal(t, earlier, *d2.RemindedAt)

	reopened := renewal.OpenReminders(ctx, bridge).Snapshot()
	require.Len(t, reopened, 3)
	require.Equal(t, fixedNow, reopened["d5"])

	_, err = svc.RemindAll(ctx, renewal.RemindAllRequest{IDs: []string{"d1", "nope"}})
	require.ErrorIs(t, err, renewal.ErrRenewalNotFound)

	_, err = svc.RemindAll(ctx, renewal.RemindAllRequest{})
	require.ErrorIs(t, err, renewal.ErrInvalidInput)
}

func TestOpenReminders_LegacyMap(t *testing.T) {
	kv := new(mocks.KVStore)
	kv.On("Get", mock.Anything, persist.KeyReminders).
		Return(`{"d4":"2023-10-01T08:15:30.123Z"}`, nil)
	reminders := renewal.OpenReminders(context.Background(), persist.NewBridge(kv, nil))

	at, ok := reminders.Get("d4")
	require.True(t, ok)
	require.Equal(t, time.Date(2023, 10, 1, 8, 15, 30, 123000000, time.UTC), at.UTC())
}

func TestOpenReminders_GarbageFallsBackToEmpty(t *testing.T) {
	kv := new(mocks.KVStore)
	kv.On("Get", mock.Anything, persist.KeyReminders).Return(`["not","a","map"]`, nil)
	reminders := renewal.OpenReminders(context.Background(), persist.NewBridge(kv, nil))
	require.Empty(t, reminders.Snapshot())
}

func TestStats(t *testing.T) {
	svc := newService(nil, nil)
	require.Equal(t, renewal.Stats{Total: 6, Critical: 2, Warning: 2, Reminded: 0, TotalCost: 97}, svc.Stats())
}

func TestExport(t *testing.T) {
	svc := newService(nil, nil)
	_, err := svc.ToggleReminder(context.Background(), "d5")
	require.NoError(t, err)

	file, err := svc.Export(listing.Query{Filters: map[string]string{"type": "hosting"}})
	require.NoError(t, err)
	require.Equal(t, "domains_export_2023-11-10.csv", file.Filename)
	require.Equal(t,
		"ID,Domain,Env,Type,RenewDate,DaysLeft,Provider,Cost,Severity,RemindedAt\n"+
			"d5,legacy-app.com,prod,hosting,2023-11-12,2,DigitalOcean,50,critical,2023-11-10T12:00:00Z\n"+
			"d3,staging.gloovup.io,staging,hosting,2023-12-05,25,Vercel,20,warning,\n",
		file.Content)
}
