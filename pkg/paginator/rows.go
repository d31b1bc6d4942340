package paginator

import (
	"context"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Rows returns the rows of all pages of the query, see Pages
func Rows(source port.PageSource, options model.AllDocsOptions) Iterator[model.Row] {
	return Flatten(Pages(source, options))
}

// Flatten returns the rows of the pages in order. Only the
// rows of the current page are held in memory.
func Flatten(pages Iterator[*model.Page]) Iterator[model.Row] {
	return &flattener{pages: pages}
}

type flattener struct {
	pages Iterator[*model.Page]
	rows  []model.Row
	row   model.Row
}

func (f *flattener) Next(ctx context.Context) bool {
	for len(f.rows) == 0 {
		if !f.pages.Next(ctx) {
			f.row = model.Row{}
			return false
		}
		if page := f.pages.Value(); page != nil {
			f.rows = page.Rows
		}
	}

	f.row, f.rows = f.rows[0], f.rows[1:]
	return true
}

func (f *flattener) Value() model.Row {
	return f.row
}

func (f *flattener) Err() error {
	return f.pages.Err()
}
