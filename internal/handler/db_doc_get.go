package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type DBDocGet struct{}

func (s *DBDocGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	doc, err := databaseOf(r).GetDocument(r.Context(), mux.Vars(r)["docid"])
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	w.Header().Set("ETag", `"`+doc.Rev+`"`)
	writeJSON(w, http.StatusOK, doc.Body())
}
