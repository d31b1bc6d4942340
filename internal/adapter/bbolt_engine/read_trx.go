package bbolt_engine

import (
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
	"go.etcd.io/bbolt"
)

var _ port.EngineReadTransaction = (*ReadTransaction)(nil)

// ReadTransaction reads from one consistent snapshot. Values are
// only valid until the transaction ends.
type ReadTransaction struct {
	btx *bbolt.Tx
}

func (tx *ReadTransaction) BucketStats(bucket []byte) *model.BucketStats {
	b := tx.btx.Bucket(bucket)
	if b == nil {
		return new(model.BucketStats)
	}

	s := b.Stats()
	return &model.BucketStats{
		Keys:      uint64(s.KeyN),
		Used:      uint64(s.BranchInuse + s.LeafInuse),
		Allocated: uint64(s.BranchAlloc + s.LeafAlloc),
	}
}

func (tx *ReadTransaction) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	if b := tx.btx.Bucket(bucket); b != nil {
		value = b.Get(key)
	}
	if value == nil {
		return nil, port.ErrNotFound
	}
	return value, nil
}

// Cursor of a missing bucket is empty
func (tx *ReadTransaction) Cursor(bucket []byte) port.EngineCursor {
	if b := tx.btx.Bucket(bucket); b != nil {
		return b.Cursor()
	}
	return emptyCursor{}
}

type emptyCursor struct{}

func (emptyCursor) First() ([]byte, []byte)      { return nil, nil }
func (emptyCursor) Last() ([]byte, []byte)       { return nil, nil }
func (emptyCursor) Next() ([]byte, []byte)       { return nil, nil }
func (emptyCursor) Prev() ([]byte, []byte)       { return nil, nil }
func (emptyCursor) Seek([]byte) ([]byte, []byte) { return nil, nil }
