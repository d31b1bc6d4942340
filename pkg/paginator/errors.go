package paginator

import (
	"github.com/goydb/alldocs/pkg/model"
)

// QueryError is returned if the page source failed to answer
// a query. Options hold the cursor of the failed request, they
// can be used to resume the iteration.
type QueryError struct {
	Options model.AllDocsOptions
	Err     error
}

func (e *QueryError) Error() string {
	return "query " + e.Options.Values().Encode() + " failed: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
