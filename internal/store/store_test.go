package store_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gloovup/portal/internal/persist"
	"github.com/gloovup/portal/internal/repository/mocks"
	"github.com/gloovup/portal/internal/sqlite"
	"github.com/gloovup/portal/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type thing struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Active bool   `json:"active"`
}

func thingID(t thing) string { return t.ID }

func fixtures() []thing {
	return []thing{{ID: "a", Name: "Alpha", Active: true}, {ID: "b", Name: "Beta"}}
}

func newBridge(t *testing.T) (*persist.Bridge, *sqlite.KVRepository) {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })
	kv := sqlite.NewKVRepository(db)
	return persist.NewBridge(kv, nil), kv
}

func TestOpen_FallsBackToFixtures(t *testing.T) {
	bridge, _ := newBridge(t)
	s := store.Open(context.Background(), bridge, "things", fixtures(), thingID, nil)

	require.Equal(t, fixtures(), s.Snapshot())
	require.Equal(t, "things", s.Key())
}

func TestOpen_RehydratesPersistedState(t *testing.T) {
	bridge, _ := newBridge(t)
	ctx := context.Background()
	bridge.Save(ctx, "things", []thing{{ID: "z", Name: "Zed"}})

	s := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)
	require.Equal(t, []thing{{ID: "z", Name: "Zed"}}, s.Snapshot())
}

func TestOpen_RejectsInvalidShape(t *testing.T) {
	cases := map[string]string{
		"duplicate ids": `{"version":1,"data":[{"id":"a","name":"x"},{"id":"a","name":"y"}]}`,
		"missing id":    `{"version":1,"data":[{"name":"x"}]}`,
		"failed tags":   `{"version":1,"data":[{"id":"a"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			bridge, kv := newBridge(t)
			ctx := context.Background()
			require.NoError(t, kv.Put(ctx, "things", raw))

			s := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)
			require.Equal(t, fixtures(), s.Snapshot())
		})
	}
}

func TestMutate_WritesThrough(t *testing.T) {
	bridge, _ := newBridge(t)
	ctx := context.Background()
	s := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)

	_, err := s.Mutate(ctx, func(items []thing) ([]thing, error) {
		return store.Prepend(items, thing{ID: "c", Name: "Gamma"}), nil
	})
	require.NoError(t, err)

	reopened := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)
	require.Equal(t, []string{"c", "a", "b"}, idsOf(reopened.Snapshot()))
}

func TestMutate_RejectedLeavesStateUntouched(t *testing.T) {
	kv := new(mocks.KVStore)
	kv.On("Get", mock.Anything, "things").Return("", errors.New("unavailable"))
	bridge := persist.NewBridge(kv, nil)
	ctx := context.Background()
	s := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)

	_, err := s.Mutate(ctx, func(items []thing) ([]thing, error) {
		items[0].Name = "scribbled"
		return nil, errors.New("rejected")
	})
	require.Error(t, err)
	require.Equal(t, fixtures(), s.Snapshot())
	kv.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestMutate_SaveFailureKeepsMemoryState(t *testing.T) {
	kv := new(mocks.KVStore)
	kv.On("Get", mock.Anything, "things").Return("", errors.New("unavailable"))
	kv.On("Put", mock.Anything, "things", mock.Anything).Return(errors.New("quota exceeded"))
	s := store.Open(context.Background(), persist.NewBridge(kv, nil), "things", fixtures(), thingID, nil)

	_, err := s.Mutate(context.Background(), func(items []thing) ([]thing, error) {
		return store.Append(items, thing{ID: "c", Name: "Gamma"}), nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	kv.AssertExpectations(t)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := store.Open[thing](context.Background(), nil, "things", fixtures(), thingID, nil)

	snap := s.Snapshot()
	snap[0].Name = "changed"

	found, ok := s.Find("a")
	require.True(t, ok)
	require.Equal(t, "Alpha", found.Name)
}

func TestReset(t *testing.T) {
	bridge, _ := newBridge(t)
	ctx := context.Background()
	s := store.Open(ctx, bridge, "things", fixtures(), thingID, nil)
	_, err := s.Mutate(ctx, func(items []thing) ([]thing, error) { return items[:1], nil })
	require.NoError(t, err)

	require.Equal(t, fixtures(), s.Reset(ctx))
	require.Equal(t, fixtures(), store.Open(ctx, bridge, "things", nil, thingID, nil).Snapshot())
}

func TestMutate_Serialized(t *testing.T) {
	s := store.Open[thing](context.Background(), nil, "things", nil, thingID, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Mutate(context.Background(), func(items []thing) ([]thing, error) {
				return store.Append(items, thing{ID: string(rune('A' + i)), Name: "n"}), nil
			})
		}(i)
	}
	wg.Wait()
	require.Equal(t, 50, s.Len())
}

func idsOf(items []thing) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
