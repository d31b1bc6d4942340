package port

import (
	"errors"

	"github.com/goydb/alldocs/pkg/model"
)

var ErrUnknownBucket = errors.New("bucket is unknown")
var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("rev doesn't match for update")

type DatabaseEngine interface {
	ReadTransaction(fn func(tx EngineReadTransaction) error) error
	WriteTransaction(fn func(tx EngineWriteTransaction) error) error
	Stats() (model.DatabaseStats, error)
	Close() error
}

type EngineWriteTransaction interface {
	EnsureBucket(bucket []byte)
	DeleteBucket(bucket []byte)
	Put(bucket, k, v []byte)
	Delete(bucket, k []byte)
	EngineReadTransaction
}

type EngineReadTransaction interface {
	BucketStats(bucket []byte) *model.BucketStats
	Cursor(bucket []byte) EngineCursor
	Get(bucket, key []byte) ([]byte, error)
}

type EngineCursor interface {
	First() (key []byte, value []byte)
	Last() (key []byte, value []byte)
	Next() (key []byte, value []byte)
	Prev() (key []byte, value []byte)
	Seek(seek []byte) (key []byte, value []byte)
}
