package storage_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageDatabases(t *testing.T) {
	WithTestStorage(t, func(ctx context.Context, s *storage.Storage) {
		_, err := s.CreateDatabase(ctx, "a")
		require.NoError(t, err)
		_, err = s.CreateDatabase(ctx, "b")
		require.NoError(t, err)

		_, err = s.CreateDatabase(ctx, "a")
		assert.ErrorIs(t, err, port.ErrDatabaseExists)

		_, err = s.CreateDatabase(ctx, "Invalid/Name")
		assert.Error(t, err)

		names, err := s.Databases(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, names)

		require.NoError(t, s.DeleteDatabase(ctx, "a"))
		_, err = s.Database(ctx, "a")
		assert.ErrorIs(t, err, port.ErrUnknownDatabase)
		assert.ErrorIs(t, s.DeleteDatabase(ctx, "a"), port.ErrUnknownDatabase)
	})
}

func TestStorageConcurrentCreate(t *testing.T) {
	WithTestStorage(t, func(ctx context.Context, s *storage.Storage) {
		const n = 8
		errs := make([]error, n)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = s.CreateDatabase(ctx, "race")
			}(i)
		}
		wg.Wait()

		var created int
		for _, err := range errs {
			if err == nil {
				created++
				continue
			}
			assert.ErrorIs(t, err, port.ErrDatabaseExists)
		}
		assert.Equal(t, 1, created)

		names, err := s.Databases(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"race"}, names)
	})
}

func TestStorageReload(t *testing.T) {
	dir, err := os.MkdirTemp(os.TempDir(), "alldocs-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	ctx := context.Background()

	s, err := storage.Open(dir)
	require.NoError(t, err)
	db, err := s.CreateDatabase(ctx, "persisted")
	require.NoError(t, err)
	_, err = db.PutDocument(ctx, &model.Document{ID: "doc"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = storage.Open(dir)
	require.NoError(t, err)
	defer s.Close()

	db, err = s.Database(ctx, "persisted")
	require.NoError(t, err)
	doc, err := db.GetDocument(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, "doc", doc.ID)
}
