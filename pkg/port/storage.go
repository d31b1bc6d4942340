package port

import (
	"context"
	"errors"

	"github.com/goydb/alldocs/pkg/model"
)

var ErrUnknownDatabase = errors.New("database does not exist")
var ErrDatabaseExists = errors.New("database already exists")

type Storage interface {
	ReloadDatabases(ctx context.Context) error
	CreateDatabase(ctx context.Context, name string) (Database, error)
	DeleteDatabase(ctx context.Context, name string) error
	Databases(ctx context.Context) ([]string, error)
	Database(ctx context.Context, name string) (Database, error)
	String() string
	Close() error
}

type Database interface {
	PageSource
	Name() string
	String() string
	Stats(ctx context.Context) (model.DatabaseStats, error)
	Transaction(ctx context.Context, fn func(tx Transaction) error) error
	RTransaction(ctx context.Context, fn func(tx Transaction) error) error
	PutDocument(ctx context.Context, doc *model.Document) (string, error)
	GetDocument(ctx context.Context, docID string) (*model.Document, error)
	DeleteDocument(ctx context.Context, docID, rev string) (*model.Document, error)
}

type Transaction interface {
	PutDocument(ctx context.Context, doc *model.Document) (rev string, err error)
	GetDocument(ctx context.Context, docID string) (*model.Document, error)
	DeleteDocument(ctx context.Context, docID, rev string) (*model.Document, error)
}
