package handler

import (
	"net/http"

	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

const defaultExportBatchSize = 1000

// Features reported by the welcome message
var Features = []string{"export", "all_docs_queries"}

type Router struct {
	Storage         *storage.Storage
	SessionStore    sessions.Store
	Admins          model.AdminUsers
	ExportBatchSize int
	PageSource      func(db port.Database) port.PageSource
}

func (router Router) Build(r *mux.Router) error {
	b := Base{
		Storage:         router.Storage,
		SessionStore:    router.SessionStore,
		Admins:          router.Admins,
		ExportBatchSize: router.ExportBatchSize,
		PageSource:      router.PageSource,
	}
	if b.ExportBatchSize <= 0 {
		b.ExportBatchSize = defaultExportBatchSize
	}

	r.Methods("GET").Path("/").Handler(&Index{Features: Features})
	r.Methods("GET").Path("/_uuids").Handler(&UUIDs{})
	r.Methods("GET").Path("/_session").Handler(&SessionGet{Base: b})
	r.Methods("POST").Path("/_session").Handler(&SessionPost{Base: b})
	r.Methods("DELETE").Path("/_session").Handler(&SessionDelete{Base: b})

	admin := r.NewRoute().Subrouter()
	admin.Use(Authenticator{Base: b}.RequireAdmin)

	admin.Methods("GET").Path("/_all_dbs").Handler(&DBAll{Base: b})
	admin.Methods("PUT").Path("/{db}").Handler(&DBCreate{Base: b})
	admin.Methods("DELETE").Path("/{db}").Handler(&DBDelete{Base: b})

	db := func(h http.Handler) http.Handler { return b.withDatabase(h) }
	admin.Methods("GET").Path("/{db}").Handler(db(&DBIndex{}))
	admin.Methods("GET").Path("/{db}/").Handler(db(&DBIndex{}))
	admin.Methods("GET", "POST").Path("/{db}/_all_docs").Handler(db(&DBDocsAll{Base: b}))
	admin.Methods("POST").Path("/{db}/_all_docs/queries").Handler(db(&DBDocsQueries{Base: b}))
	admin.Methods("GET", "POST").Path("/{db}/_export").Handler(db(&DBExport{Base: b}))
	admin.Methods("PUT", "POST").Path("/{db}/_bulk_docs").Handler(db(&DBDocsBulk{}))
	admin.Methods("GET").Path("/{db}/{docid}").Handler(db(&DBDocGet{}))
	admin.Methods("PUT").Path("/{db}/{docid}").Handler(db(&DBDocPut{}))
	admin.Methods("DELETE").Path("/{db}/{docid}").Handler(db(&DBDocDelete{}))

	return nil
}
