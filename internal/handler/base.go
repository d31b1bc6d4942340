package handler

import (
	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"

	"github.com/gorilla/sessions"
)

// Base carries what the handlers share
type Base struct {
	Storage      *storage.Storage
	SessionStore sessions.Store
	Admins       model.AdminUsers
	// ExportBatchSize is the page size of range exports without limit
	ExportBatchSize int
	// PageSource wraps the database as source of _all_docs pages,
	// nil reads the database directly
	PageSource func(db port.Database) port.PageSource
}

func (b Base) pages(db *storage.Database) port.PageSource {
	if b.PageSource != nil {
		return b.PageSource(db)
	}
	return db
}
