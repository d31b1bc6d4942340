package handler

import (
	"net/http"
)

// DBDocsAll answers a single _all_docs query with one page
type DBDocsAll struct {
	Base
}

func (s *DBDocsAll) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	options, err := allDocsOptions(r)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	page, err := s.pages(databaseOf(r)).AllDocs(r.Context(), options)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}
