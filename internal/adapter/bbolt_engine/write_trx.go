package bbolt_engine

import (
	"bytes"
	"fmt"

	"github.com/goydb/alldocs/pkg/port"
	"go.etcd.io/bbolt"
)

var _ port.EngineWriteTransaction = (*WriteTransaction)(nil)

type mutationKind uint8

const (
	createBucket mutationKind = iota + 1
	dropBucket
	putKey
	deleteKey
)

type mutation struct {
	kind       mutationKind
	bucket     []byte
	key, value []byte
}

// WriteTransaction records mutations on top of a read snapshot. Get sees
// the recorded mutations, cursors only see the snapshot.
type WriteTransaction struct {
	ReadTransaction
	log []mutation
}

func (t *WriteTransaction) EnsureBucket(bucket []byte) {
	t.log = append(t.log, mutation{kind: createBucket, bucket: bucket})
}

func (t *WriteTransaction) DeleteBucket(bucket []byte) {
	t.log = append(t.log, mutation{kind: dropBucket, bucket: bucket})
}

func (t *WriteTransaction) Put(bucket, k, v []byte) {
	t.log = append(t.log, mutation{kind: putKey, bucket: bucket, key: k, value: v})
}

func (t *WriteTransaction) Delete(bucket, k []byte) {
	t.log = append(t.log, mutation{kind: deleteKey, bucket: bucket, key: k})
}

// Get returns the latest recorded value of the key, falling
// back to the snapshot if the key wasn't touched
func (t *WriteTransaction) Get(bucket, key []byte) ([]byte, error) {
	for i := len(t.log) - 1; i >= 0; i-- {
		m := t.log[i]
		if !bytes.Equal(m.bucket, bucket) {
			continue
		}
		switch {
		case m.kind == dropBucket:
			return nil, port.ErrNotFound
		case m.kind == putKey && bytes.Equal(m.key, key):
			return m.value, nil
		case m.kind == deleteKey && bytes.Equal(m.key, key):
			return nil, port.ErrNotFound
		}
	}
	return t.ReadTransaction.Get(bucket, key)
}

func (t *WriteTransaction) apply(btx *bbolt.Tx) error {
	for _, m := range t.log {
		var err error
		switch m.kind {
		case createBucket:
			_, err = btx.CreateBucketIfNotExists(m.bucket)
		case dropBucket:
			err = btx.DeleteBucket(m.bucket)
		case putKey:
			b := btx.Bucket(m.bucket)
			if b == nil {
				return fmt.Errorf("put %q: %w: %q", m.key, port.ErrUnknownBucket, m.bucket)
			}
			err = b.Put(m.key, m.value)
		case deleteKey:
			if b := btx.Bucket(m.bucket); b != nil {
				err = b.Delete(m.key)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
