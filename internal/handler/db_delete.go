package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DBDelete closes the database and removes its file
type DBDelete struct {
	Base
}

func (s *DBDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := s.Storage.DeleteDatabase(r.Context(), mux.Vars(r)["db"])
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, OkResponse{Ok: true})
}
