package paginator_test

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goydb/alldocs/pkg/model"
)

var testIDs = func() []string {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("%02d", i)
	}
	return ids
}()

var errBackend = errors.New("backend unavailable")

// memorySource answers _all_docs queries over a sorted list of ids
type memorySource struct {
	ids   []string
	calls []model.AllDocsOptions
	// failAt makes the n-th call (1 based) fail
	failAt int
}

func newMemorySource(ids []string) *memorySource {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return &memorySource{ids: sorted}
}

func (m *memorySource) AllDocs(ctx context.Context, o model.AllDocsOptions) (*model.Page, error) {
	m.calls = append(m.calls, o.Clone())
	if m.failAt == len(m.calls) {
		return nil, errBackend
	}

	page := &model.Page{TotalRows: len(m.ids), Rows: []model.Row{}}

	if o.HasKeys() {
		keys := o.Keys
		if o.Key != nil {
			keys = []string{*o.Key}
		}
		for _, key := range keys {
			i := sort.SearchStrings(m.ids, key)
			if i < len(m.ids) && m.ids[i] == key {
				page.Rows = append(page.Rows, model.Row{ID: key, Key: key})
			} else if o.Key == nil {
				page.Rows = append(page.Rows, model.Row{Key: key, Error: model.RowErrorNotFound})
			}
		}
		return page, nil
	}

	ordered := m.ids
	if o.Descending {
		ordered = make([]string, len(m.ids))
		for i, id := range m.ids {
			ordered[len(m.ids)-1-i] = id
		}
	}

	before := func(a, b string) bool {
		if o.Descending {
			return a > b
		}
		return a < b
	}

	var matched []string
	for _, id := range ordered {
		if o.StartKey != nil && before(id, *o.StartKey) {
			page.Offset++
			continue
		}
		if o.EndKey != nil && before(*o.EndKey, id) {
			break
		}
		matched = append(matched, id)
	}

	if o.Skip >= len(matched) {
		matched = nil
	} else {
		matched = matched[o.Skip:]
	}
	if o.Limit != nil && *o.Limit < len(matched) {
		matched = matched[:*o.Limit]
	}

	for _, id := range matched {
		page.Rows = append(page.Rows, model.Row{ID: id, Key: id})
	}
	return page, nil
}

func rowIDs(rows []model.Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}

func pageSizes(pages []*model.Page) []int {
	sizes := make([]int, len(pages))
	for i, page := range pages {
		sizes[i] = len(page.Rows)
	}
	return sizes
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// chunkSizes simulates the expected page sizes of a paginated query
func chunkSizes(n, limit int) []int {
	var sizes []int
	for n > 0 {
		if n < limit {
			sizes = append(sizes, n)
			break
		}
		sizes = append(sizes, limit)
		n -= limit
	}
	return append(sizes, 0)
}
