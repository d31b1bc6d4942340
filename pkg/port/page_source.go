package port

import (
	"context"

	"github.com/goydb/alldocs/pkg/model"
)

// PageSource answers a single _all_docs query with one page of rows.
// It is the only capability the paginator needs from a database.
type PageSource interface {
	AllDocs(ctx context.Context, options model.AllDocsOptions) (*model.Page, error)
}

// PageSourceFunc allows to use ordinary functions as page source
type PageSourceFunc func(ctx context.Context, options model.AllDocsOptions) (*model.Page, error)

func (fn PageSourceFunc) AllDocs(ctx context.Context, options model.AllDocsOptions) (*model.Page, error) {
	return fn(ctx, options)
}
