package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// DBDocDelete writes a tombstone, the revision is taken from
// the rev parameter or the If-Match header
type DBDocDelete struct{}

func (s *DBDocDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rev := r.URL.Query().Get("rev")
	if rev == "" {
		rev = strings.Trim(r.Header.Get("If-Match"), `"`)
	}

	doc, err := databaseOf(r).DeleteDocument(r.Context(), mux.Vars(r)["docid"], rev)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SimpleDocResponse{Ok: true, ID: doc.ID, Rev: doc.Rev})
}
