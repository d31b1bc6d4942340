package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/paginator"
)

// DBExport streams all rows of one or more queries as newline
// delimited JSON. The limit of a query is the page size used to
// read the database, range queries without limit use the configured
// export batch size unless paginate=false. A POST body
// {"queries": [...]} exports the queries one after another.
type DBExport struct {
	Base
}

func (s *DBExport) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	queries, err := s.queries(r)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	ctx := r.Context()
	db := databaseOf(r)
	rows := paginator.QueriesOf(s.pages(db), paginator.Rows, queries...)

	// errors of the first page still get a proper status
	hasRows := rows.Next(ctx)
	if err := rows.Err(); err != nil {
		WriteErrorFor(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)

	var n int
	for ; hasRows; hasRows = rows.Next(ctx) {
		err := enc.Encode(rows.Value())
		if err != nil {
			log.Printf("Export of %s aborted after %d rows: %v", db.Name(), n, err)
			return
		}
		n++
		if flusher != nil && n%s.ExportBatchSize == 0 {
			flusher.Flush()
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("Export of %s failed after %d rows: %v", db.Name(), n, err)
		enc.Encode(errorResponse(err)) // nolint: errcheck
	}
}

func (s *DBExport) queries(r *http.Request) ([]model.AllDocsOptions, error) {
	var queries []model.AllDocsOptions
	if r.Method == http.MethodPost {
		var err error
		queries, err = bodyQueries(r)
		if err != nil {
			return nil, err
		}
	} else {
		options, err := model.ParseAllDocsOptions(r.URL.Query())
		if err != nil {
			return nil, err
		}
		queries = []model.AllDocsOptions{options}
	}

	for i := range queries {
		queries[i] = queries[i].WithPageSize(s.ExportBatchSize)
	}
	return queries, nil
}
