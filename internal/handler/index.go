package handler

import (
	"net/http"
)

// Version is reported by the welcome message
var Version = "0.1.0"

// Index answers the welcome message of the server root
type Index struct {
	Features []string
}

func (s *Index) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Info{
		Couchdb:  "Welcome",
		Version:  Version,
		Features: s.Features,
		Vendor:   Vendor{Name: "alldocs", Version: Version},
	})
}

type Info struct {
	Couchdb  string   `json:"couchdb"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Vendor   Vendor   `json:"vendor"`
}

type Vendor struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}
