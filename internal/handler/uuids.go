package handler

import (
	"encoding/hex"
	"net/http"

	uuid "github.com/satori/go.uuid"
)

const maxUUIDs = 1000

type UUIDs struct{}

func (s *UUIDs) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count := intOption("count", 1, r.URL.Query())
	if count < 1 || count > maxUUIDs {
		WriteError(w, http.StatusBadRequest, "count must be between 1 and 1000")
		return
	}

	ids := make([]string, count)
	for i := range ids {
		ids[i] = hex.EncodeToString(uuid.NewV4().Bytes())
	}

	writeJSON(w, http.StatusOK, UUIDsResponse{Uuids: ids})
}

type UUIDsResponse struct {
	Uuids []string `json:"uuids"`
}
