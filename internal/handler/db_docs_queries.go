package handler

import (
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/paginator"
)

// DBDocsQueries answers multiple _all_docs queries, every
// query results in exactly one response page.
type DBDocsQueries struct {
	Base
}

func (s *DBDocsQueries) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	queries, err := bodyQueries(r)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	pages := paginator.QueriesOf(s.pages(databaseOf(r)), paginator.Single, queries...)
	results, err := paginator.Collect(r.Context(), pages)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}
	if results == nil {
		results = []*model.Page{}
	}

	writeJSON(w, http.StatusOK, QueriesResponse{Results: results})
}

type QueriesResponse struct {
	Results []*model.Page `json:"results"`
}
