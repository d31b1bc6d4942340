package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

type DBCreate struct {
	Base
}

func (s *DBCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, err := s.Storage.CreateDatabase(r.Context(), mux.Vars(r)["db"])
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		WriteError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, OkResponse{Ok: true})
}
