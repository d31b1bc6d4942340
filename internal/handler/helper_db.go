package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goydb/alldocs/internal/adapter/storage"
)

type databaseKey struct{}

// withDatabase resolves the {db} route variable before
// calling next, unknown databases are not found
func (b Base) withDatabase(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		db, err := b.Storage.Database(r.Context(), mux.Vars(r)["db"])
		if err != nil {
			WriteError(w, http.StatusNotFound, "Database does not exist.")
			return
		}
		ctx := context.WithValue(r.Context(), databaseKey{}, db)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func databaseOf(r *http.Request) *storage.Database {
	db, _ := r.Context().Value(databaseKey{}).(*storage.Database)
	return db
}
