package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/goydb/alldocs/pkg/port"
)

// Storage manages a directory of databases, each database
// is a single bbolt file named like the database.
type Storage struct {
	dir string

	mu  sync.RWMutex
	dbs map[string]*Database
}

func Open(dir string) (*Storage, error) {
	s := &Storage{dir: dir}
	err := s.ReloadDatabases(context.Background())
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) String() string {
	return fmt.Sprintf("<Storage dir=%q>", s.dir)
}

// ReloadDatabases closes all open databases and opens
// every database file found in the directory
func (s *Storage) ReloadDatabases(ctx context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.closeAll(); err != nil {
		log.Printf("Reloading %s: %v", s, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		db, err := s.open(name)
		if err != nil {
			return fmt.Errorf("loading database %q: %w", name, err)
		}
		log.Printf("Loaded %s", db)
	}

	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeAll()
}

// closeAll requires the write lock
func (s *Storage) closeAll() error {
	var errs []error
	for name, db := range s.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %q: %w", name, err))
		}
	}
	s.dbs = make(map[string]*Database)
	return errors.Join(errs...)
}

var _ port.Storage = (*PortStorage)(nil)

// PortStorage exposes the storage through the port interfaces
type PortStorage struct {
	*Storage
}

func (s PortStorage) CreateDatabase(ctx context.Context, name string) (port.Database, error) {
	db, err := s.Storage.CreateDatabase(ctx, name)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func (s PortStorage) Database(ctx context.Context, name string) (port.Database, error) {
	db, err := s.Storage.Database(ctx, name)
	if err != nil {
		return nil, err
	}
	return db, nil
}
