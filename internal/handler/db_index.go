package handler

import (
	"net/http"
)

// DBIndex reports the database info
type DBIndex struct{}

func (s *DBIndex) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	db := databaseOf(r)
	stats, err := db.Stats(r.Context())
	if err != nil {
		WriteErrorFor(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DBResponse{
		DbName:      db.Name(),
		DocCount:    stats.DocCount,
		DocDelCount: stats.DocDelCount,
		Sizes: Sizes{
			File:     stats.FileSize,
			Active:   stats.Alloc,
			External: stats.InUse,
		},
	})
}

type DBResponse struct {
	DbName      string `json:"db_name"`
	Sizes       Sizes  `json:"sizes"`
	DocDelCount uint64 `json:"doc_del_count"`
	DocCount    uint64 `json:"doc_count"`
}

type Sizes struct {
	File     uint64 `json:"file"`
	External uint64 `json:"external"`
	Active   uint64 `json:"active"`
}
