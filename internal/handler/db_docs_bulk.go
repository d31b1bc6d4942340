package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/goydb/alldocs/pkg/model"
)

// DBDocsBulk writes all documents of the request in one
// transaction, every document gets its own result
type DBDocsBulk struct{}

func (s *DBDocsBulk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req BulkDocRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	docs := make([]*model.Document, len(req.Docs))
	for i, data := range req.Docs {
		doc := &model.Document{Data: data}
		doc.ID, _ = data["_id"].(string)
		doc.Deleted, _ = data["_deleted"].(bool)
		docs[i] = doc
	}

	db := databaseOf(r)
	results, err := db.BulkDocs(r.Context(), docs)
	if err != nil {
		log.Printf("Bulk write of %d documents to %s failed: %v", len(docs), db.Name(), err)
		WriteErrorFor(w, err)
		return
	}

	resp := make([]SimpleDocResponse, len(results))
	for i, res := range results {
		resp[i].ID = res.ID
		if res.Err != nil {
			e := errorResponse(res.Err)
			resp[i].Error, resp[i].Reason = e.Error, e.Reason
		} else {
			resp[i].Ok = true
			resp[i].Rev = res.Rev
		}
	}

	writeJSON(w, http.StatusCreated, resp)
}

type BulkDocRequest struct {
	Docs []map[string]interface{} `json:"docs"`
}
