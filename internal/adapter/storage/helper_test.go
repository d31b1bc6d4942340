package storage_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIDs = func() []string {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("%02d", i)
	}
	return ids
}()

func WithTestStorage(t *testing.T, fn func(ctx context.Context, s *storage.Storage)) {
	ctx := context.Background()
	dir, err := os.MkdirTemp(os.TempDir(), "alldocs-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s, err := storage.Open(dir)
	assert.NoError(t, err)
	if err == nil {
		fn(ctx, s)
		s.Close()
	}
}

func WithTestDatabase(t *testing.T, fn func(ctx context.Context, db *storage.Database)) {
	WithTestStorage(t, func(ctx context.Context, s *storage.Storage) {
		db, err := s.CreateDatabase(ctx, "test")
		assert.NoError(t, err)
		if err == nil {
			fn(ctx, db)
		}
	})
}

// WithTestRecords creates a database with the documents "00".."19"
func WithTestRecords(t *testing.T, fn func(ctx context.Context, db *storage.Database)) {
	WithTestDatabase(t, func(ctx context.Context, db *storage.Database) {
		docs := make([]*model.Document, len(testIDs))
		for i, id := range testIDs {
			docs[i] = &model.Document{
				ID:   id,
				Data: map[string]interface{}{"text": "this is " + id},
			}
		}
		results, err := db.BulkDocs(ctx, docs)
		require.NoError(t, err)
		for _, res := range results {
			require.NoError(t, res.Err)
		}
		fn(ctx, db)
	})
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
