package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/goydb/alldocs/internal/adapter/bbolt_engine"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

var _ port.Database = (*Database)(nil)

// database names as accepted by CouchDB, without sub directories
var validDatabaseName = regexp.MustCompile(`^[a-z][a-z0-9_$()+-]*$`)

type Database struct {
	name   string
	engine port.DatabaseEngine
}

func (d *Database) Name() string {
	return d.name
}

func (d *Database) String() string {
	stats, err := d.Stats(context.Background())
	if err != nil {
		return fmt.Sprintf("<Database name=%q err=%v>", d.name, err)
	}
	return fmt.Sprintf("<Database name=%q docs=%d deleted=%d>", d.name, stats.DocCount, stats.DocDelCount)
}

func (d *Database) Stats(ctx context.Context) (model.DatabaseStats, error) {
	return d.engine.Stats()
}

func (d *Database) Close() error {
	return d.engine.Close()
}

// CreateDatabase creates and opens a new database. The existence check
// and the open happen under the same lock, a database file is never
// opened twice.
func (s *Storage) CreateDatabase(ctx context.Context, name string) (*Database, error) {
	if !validDatabaseName.MatchString(name) {
		return nil, fmt.Errorf("invalid database name %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dbs[name]; ok {
		return nil, fmt.Errorf("%w: %q", port.ErrDatabaseExists, name)
	}
	return s.open(name)
}

// open requires the write lock
func (s *Storage) open(name string) (*Database, error) {
	engine, err := bbolt_engine.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}

	err = engine.WriteTransaction(func(tx port.EngineWriteTransaction) error {
		tx.EnsureBucket(model.DocsBucket)
		tx.EnsureBucket(model.DeletedBucket)
		return nil
	})
	if err != nil {
		engine.Close() // nolint: errcheck
		return nil, err
	}

	db := &Database{name: name, engine: engine}
	s.dbs[name] = db
	return db, nil
}

func (s *Storage) DeleteDatabase(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, ok := s.dbs[name]
	if !ok {
		return fmt.Errorf("%w: %q", port.ErrUnknownDatabase, name)
	}
	delete(s.dbs, name)

	if err := db.Close(); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.dir, name))
}

// Databases returns the sorted database names
func (s *Storage) Databases(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	names := make([]string, 0, len(s.dbs))
	for name := range s.dbs {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names, nil
}

func (s *Storage) Database(ctx context.Context, name string) (*Database, error) {
	s.mu.RLock()
	db, ok := s.dbs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownDatabase, name)
	}
	return db, nil
}
