package paginator

import (
	"context"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Producer creates the iterator of a single query, Pages
// and Rows are producers.
type Producer[T any] = func(source port.PageSource, options model.AllDocsOptions) Iterator[T]

// Pages returns the responses of the query. If a limit is set and
// pagination isn't disabled, the query is paginated: pages are
// requested until a page without rows was returned, that empty
// page is the last one. Otherwise the query is passed through
// and exactly one page is returned.
func Pages(source port.PageSource, options model.AllDocsOptions) Iterator[*model.Page] {
	if options.Paginated() {
		return Paginated(source, options)
	}
	return Single(source, options)
}

// Paginated requests the pages of the query one after another. After each
// page the startkey is set to the id of the last row and one row is skipped.
// The skip of the given options only applies to the first request.
// Queries with key or keys are requested only once.
func Paginated(source port.PageSource, options model.AllDocsOptions) Iterator[*model.Page] {
	return &cursor{
		source: source,
		state:  options.Clone(),
	}
}

// Single requests the query once and returns the response as only page
func Single(source port.PageSource, options model.AllDocsOptions) Iterator[*model.Page] {
	return &cursor{
		source: source,
		state:  options.Clone(),
		single: true,
	}
}

type cursor struct {
	source port.PageSource
	state  model.AllDocsOptions
	single bool

	page *model.Page
	done bool
	err  error
}

func (c *cursor) Next(ctx context.Context) bool {
	c.page = nil
	if c.done {
		return false
	}

	page, err := c.source.AllDocs(ctx, c.state)
	if err != nil {
		c.err = &QueryError{Options: c.state.Clone(), Err: err}
		c.done = true
		return false
	}
	if page == nil {
		page = &model.Page{}
	}
	c.page = page

	last, ok := page.Last()
	if c.single || c.state.HasKeys() || !ok {
		c.done = true
		return true
	}

	// continue after the last row of this page
	c.state.StartKey = &last.ID
	c.state.Skip = 1

	return true
}

func (c *cursor) Value() *model.Page {
	return c.page
}

func (c *cursor) Err() error {
	return c.err
}
