package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/storage/sqlite"
)

// newTestStore creates a throwaway SQLite store backed by a temp directory.
func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// seedGroup creates the given users and a group containing all of them.
// The first user is the creator.
func seedGroup(t *testing.T, store storage.Store, name string, userIDs ...string) *models.Group {
	t.Helper()
	ctx := context.Background()

	for _, id := range userIDs {
		user := models.NewUser(id, "Name of "+id, "hash")
		require.NoError(t, store.CreateUser(ctx, user))
	}

	group := &models.Group{
		Name:      name,
		CreatorID: userIDs[0],
		Members:   userIDs,
	}
	require.NoError(t, store.CreateGroup(ctx, group))

	return group
}

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
