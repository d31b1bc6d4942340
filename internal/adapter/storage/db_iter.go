package storage

import (
	"bytes"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Iterator walks over a key range of a bucket in
// ascending or descending order.
type Iterator struct {
	opts   *model.IteratorOptions
	limit  int
	offset int
	total  int

	key   []byte
	value []byte

	tx     port.EngineReadTransaction
	cursor port.EngineCursor
}

func NewIterator(tx port.EngineReadTransaction, opts *model.IteratorOptions) *Iterator {
	return &Iterator{
		opts:  opts,
		limit: opts.Limit,
		total: -1,
		tx:    tx,
	}
}

// First positions the iterator at the start key and
// skips the configured number of documents.
func (i *Iterator) First() *model.Document {
	i.cursor = i.tx.Cursor(i.opts.BucketName)
	i.limit = i.opts.Limit
	i.seek()
	i.offset = i.rank()

	for j := 0; j < i.opts.Skip && i.key != nil && i.inRange(); j++ {
		i.forward()
		i.offset++
	}

	return i.document()
}

func (i *Iterator) Next() *model.Document {
	if i.limit > 0 {
		i.limit--
	}
	i.forward()
	return i.document()
}

func (i *Iterator) Continue() bool {
	if i.key == nil { // last pair
		return false
	}

	if i.limit == 0 { // no more limit
		return false
	}

	return i.inRange()
}

// Total returns the number of keys in the bucket
func (i *Iterator) Total() int {
	if i.total < 0 {
		i.total = int(i.tx.BucketStats(i.opts.BucketName).Keys)
	}
	return i.total
}

// Offset returns the number of keys preceding the position
// reached by First, in iteration order
func (i *Iterator) Offset() int {
	return i.offset
}

// rank counts the keys before the current key in iteration order.
// Two cursors walk away from the key in both directions, the walk
// stops at whichever end of the bucket is closer.
func (i *Iterator) rank() int {
	if i.key == nil {
		return i.Total()
	}
	if i.opts.StartKey == nil {
		return 0
	}

	back, fwd := i.tx.Cursor(i.opts.BucketName), i.tx.Cursor(i.opts.BucketName)
	back.Seek(i.key)
	fwd.Seek(i.key)
	prev, next := back.Prev, fwd.Next
	if i.opts.Descending {
		prev, next = back.Next, fwd.Prev
	}

	before, after := 0, 1
	for {
		if k, _ := prev(); k == nil {
			return before
		}
		before++
		if k, _ := next(); k == nil {
			return i.Total() - after
		}
		after++
	}
}

func (i *Iterator) seek() {
	start := i.opts.StartKey

	switch {
	case start == nil && i.opts.Descending:
		i.key, i.value = i.cursor.Last()
	case start == nil:
		i.key, i.value = i.cursor.First()
	case i.opts.Descending:
		// seek finds the first key >= start, descending
		// iterations need the last key <= start
		i.key, i.value = i.cursor.Seek(start)
		if i.key == nil {
			i.key, i.value = i.cursor.Last()
		} else if bytes.Compare(i.key, start) > 0 {
			i.key, i.value = i.cursor.Prev()
		}
	default:
		i.key, i.value = i.cursor.Seek(start)
	}
}

func (i *Iterator) forward() {
	if i.opts.Descending {
		i.key, i.value = i.cursor.Prev()
	} else {
		i.key, i.value = i.cursor.Next()
	}
}

func (i *Iterator) inRange() bool {
	if i.opts.EndKey == nil {
		return true
	}

	cmp := bytes.Compare(i.key, i.opts.EndKey)
	if i.opts.Descending {
		cmp = -cmp
	}
	if i.opts.InclusiveEnd {
		return cmp <= 0
	}
	return cmp < 0
}

func (i *Iterator) document() *model.Document {
	if i.key == nil || i.value == nil {
		return nil
	}
	doc, err := decodeDocument(i.value)
	if err != nil {
		// keep the key, a broken record still has an id
		return &model.Document{ID: string(i.key)}
	}
	return doc
}
