package paginator_test

import (
	"context"
	"testing"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/paginator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	testCases := []struct {
		description string
		expectedIDs []string
		query       model.AllDocsOptions
	}{
		{
			"all expected ids returned",
			testIDs[3:17],
			model.AllDocsOptions{StartKey: model.Str("03"), EndKey: model.Str("16"), Limit: model.Int(5)},
		},
		{
			"query response with no rows handled",
			nil,
			model.AllDocsOptions{StartKey: model.Str("20"), EndKey: model.Str("36"), Limit: model.Int(5)},
		},
		{
			"non-paginated query handled",
			testIDs[3:17],
			model.AllDocsOptions{StartKey: model.Str("03"), EndKey: model.Str("16")},
		},
		{
			"missing startkey handled",
			testIDs,
			model.AllDocsOptions{Limit: model.Int(5), IncludeDocs: true},
		},
		{
			"initial skip supported",
			testIDs[3:],
			model.AllDocsOptions{Limit: model.Int(2), Skip: 3, IncludeDocs: true},
		},
		{
			"limit zero returns nothing",
			nil,
			model.AllDocsOptions{Limit: model.Int(0)},
		},
		{
			"descending true works correctly",
			reversed(testIDs[3:17]),
			model.AllDocsOptions{StartKey: model.Str("16"), EndKey: model.Str("03"), Limit: model.Int(5), Descending: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			ctx := context.Background()
			source := newMemorySource(testIDs)

			rows, err := paginator.Collect(ctx, paginator.Rows(source, tc.query))
			require.NoError(t, err)
			if tc.expectedIDs == nil {
				assert.Empty(t, rows)
			} else {
				assert.Equal(t, tc.expectedIDs, rowIDs(rows))
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	ctx := context.Background()
	pages := paginator.Slice(
		&model.Page{Rows: []model.Row{{ID: "a"}, {ID: "b"}}},
		&model.Page{},
		(*model.Page)(nil),
		&model.Page{Rows: []model.Row{{ID: "c"}}},
		&model.Page{Rows: []model.Row{{ID: "d"}, {ID: "e"}, {ID: "f"}}},
	)

	rows, err := paginator.Collect(ctx, paginator.Flatten(pages))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, rowIDs(rows))
}

func TestRowsError(t *testing.T) {
	ctx := context.Background()
	source := newMemorySource(testIDs)
	source.failAt = 2

	it := paginator.Rows(source, model.AllDocsOptions{Limit: model.Int(3)})
	var ids []string
	for it.Next(ctx) {
		ids = append(ids, it.Value().ID)
	}
	assert.Equal(t, testIDs[:3], ids)
	assert.ErrorIs(t, it.Err(), errBackend)
	assert.Equal(t, model.Row{}, it.Value())
}

func TestRowsStreaming(t *testing.T) {
	ctx := context.Background()
	source := newMemorySource(testIDs)

	it := paginator.Rows(source, model.AllDocsOptions{Limit: model.Int(4)})
	for i := 0; i < 4; i++ {
		require.True(t, it.Next(ctx))
	}
	assert.Len(t, source.calls, 1, "next page is only requested when needed")

	require.True(t, it.Next(ctx))
	assert.Equal(t, "04", it.Value().ID)
	assert.Len(t, source.calls, 2)
}
