package sqlite

import (
	"context"
	"testing"

	"github.com/gloovup/portal/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestKVRepository_PutGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKVRepository(db)

	require.NoError(t, repo.Put(ctx, "gloov_tickets", `{"version":1,"data":[]}`))

	value, err := repo.Get(ctx, "gloov_tickets")
	require.NoError(t, err)
	require.Equal(t, `{"version":1,"data":[]}`, value)
}

func TestKVRepository_PutOverwrites(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKVRepository(db)

	require.NoError(t, repo.Put(ctx, "k", "one"))
	require.NoError(t, repo.Put(ctx, "k", "two"))

	value, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "two", value)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"k"}, keys)
}

func TestKVRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewKVRepository(db)

	_, err := repo.Get(context.Background(), "never_written")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKVRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewKVRepository(db)

	require.NoError(t, repo.Put(ctx, "a", "1"))
	require.NoError(t, repo.Put(ctx, "b", "2"))
	require.NoError(t, repo.Delete(ctx, "a"))
	require.ErrorIs(t, repo.Delete(ctx, "a"), repository.ErrNotFound)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, keys)
}

func TestKVRepository_RejectsEmptyKey(t *testing.T) {
	db := NewTestDB(t)
	err := NewKVRepository(db).Put(context.Background(), "", "x")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}
