package bbolt_engine

import (
	"fmt"
	"os"
	"time"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
	"go.etcd.io/bbolt"
)

var _ port.DatabaseEngine = (*DB)(nil)

// OpenTimeout is how long Open waits for the file lock of a
// database that is held by another DB value or process.
var OpenTimeout = time.Second

type DB struct {
	bolt *bbolt.DB
}

func Open(path string) (*DB, error) {
	bolt, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &DB{bolt: bolt}, nil
}

func (db *DB) Close() error {
	return db.bolt.Close()
}

func (db *DB) Path() string {
	return db.bolt.Path()
}

func (db *DB) ReadTransaction(fn func(tx port.EngineReadTransaction) error) error {
	return db.bolt.View(func(btx *bbolt.Tx) error {
		return fn(&ReadTransaction{btx: btx})
	})
}

// WriteTransaction runs fn against a read snapshot and records its writes.
// The recorded writes are applied in a single update transaction after fn
// returned without error, the bolt writer lock is only held for that step.
func (db *DB) WriteTransaction(fn func(tx port.EngineWriteTransaction) error) error {
	var wtx *WriteTransaction
	err := db.bolt.View(func(btx *bbolt.Tx) error {
		wtx = &WriteTransaction{ReadTransaction: ReadTransaction{btx: btx}}
		return fn(wtx)
	})
	if err != nil || len(wtx.log) == 0 {
		return err
	}

	return db.bolt.Update(wtx.apply)
}

// Stats reports the document and tombstone buckets
func (db *DB) Stats() (model.DatabaseStats, error) {
	var stats model.DatabaseStats

	fi, err := os.Stat(db.bolt.Path())
	if err != nil {
		return stats, err
	}
	stats.FileSize = uint64(fi.Size())

	err = db.ReadTransaction(func(tx port.EngineReadTransaction) error {
		live, deleted := tx.BucketStats(model.DocsBucket), tx.BucketStats(model.DeletedBucket)
		stats.DocCount, stats.DocDelCount = live.Keys, deleted.Keys
		stats.Alloc = live.Allocated + deleted.Allocated
		stats.InUse = live.Used + deleted.Used
		return nil
	})
	return stats, err
}
