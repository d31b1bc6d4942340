package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goydb/alldocs/pkg/model"
)

type DBDocPut struct{}

func (s *DBDocPut) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var data map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	docID := mux.Vars(r)["docid"]
	if id, ok := data["_id"].(string); ok && id != docID {
		WriteError(w, http.StatusBadRequest, "Document id must match the url.")
		return
	}

	doc := &model.Document{ID: docID, Data: data}
	if rev := r.URL.Query().Get("rev"); rev != "" {
		doc.Rev = rev
	}

	rev, err := databaseOf(r).PutDocument(r.Context(), doc)
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SimpleDocResponse{Ok: true, ID: docID, Rev: rev})
}

type SimpleDocResponse struct {
	ID     string `json:"id"`
	Ok     bool   `json:"ok,omitempty"`
	Rev    string `json:"rev,omitempty"`
	Error  string `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}
