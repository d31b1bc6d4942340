package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
	uuid "github.com/satori/go.uuid"
	"gopkg.in/mgo.v2/bson"
)

var _ port.Transaction = (*Transaction)(nil)

var ErrReadOnly = errors.New("transaction is read only")

// revisions are hashed with sorted map keys to be reproducible
var revEncoding, _ = cbor.CanonicalEncOptions().EncMode()

// Transaction reads through tx, in write transactions
// tx also sees the writes recorded on wtx.
type Transaction struct {
	tx  port.EngineReadTransaction
	wtx port.EngineWriteTransaction
}

func newReadTransaction(tx port.EngineReadTransaction) *Transaction {
	return &Transaction{tx: tx}
}

func newWriteTransaction(tx port.EngineWriteTransaction) *Transaction {
	return &Transaction{tx: tx, wtx: tx}
}

func (tx *Transaction) PutDocument(ctx context.Context, doc *model.Document) (rev string, err error) {
	if tx.wtx == nil {
		return "", ErrReadOnly
	}
	if doc.ID == "" {
		doc.ID = hex.EncodeToString(uuid.NewV4().Bytes())
	}

	// verify that the transaction is valid for update
	oldDoc, err := tx.document(doc.ID)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		return "", err
	}
	revSeq := 1
	if oldDoc != nil {
		if !oldDoc.Deleted && !oldDoc.ValidUpdateRevision(doc) {
			return "", port.ErrConflict
		}
		revSeq = oldDoc.NextSequence()
	}

	// meta fields are part of the document, not the data
	delete(doc.Data, "_id")
	delete(doc.Data, "_rev")
	delete(doc.Data, "_deleted")
	doc.Rev = ""

	hash := md5.New()
	err = revEncoding.NewEncoder(hash).Encode(doc)
	if err != nil {
		return "", err
	}
	rev = strconv.Itoa(revSeq) + "-" + hex.EncodeToString(hash.Sum(nil))
	doc.Rev = rev

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document %q: %w", doc.ID, err)
	}

	if doc.Deleted {
		tx.wtx.Put(model.DeletedBucket, []byte(doc.ID), data)
		tx.wtx.Delete(model.DocsBucket, []byte(doc.ID))
	} else {
		tx.wtx.Put(model.DocsBucket, []byte(doc.ID), data)
		tx.wtx.Delete(model.DeletedBucket, []byte(doc.ID))
	}

	return rev, nil
}

// GetDocument returns the document with the given id,
// deleted documents are reported as not found.
func (tx *Transaction) GetDocument(ctx context.Context, docID string) (*model.Document, error) {
	doc, err := tx.document(docID)
	if err != nil {
		return nil, err
	}
	if doc.Deleted {
		return nil, port.ErrNotFound
	}
	return doc, nil
}

func (tx *Transaction) DeleteDocument(ctx context.Context, docID, rev string) (*model.Document, error) {
	oldDoc, err := tx.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if oldDoc.Rev != rev {
		return nil, port.ErrConflict
	}

	doc := &model.Document{
		ID:      docID,
		Rev:     rev,
		Deleted: true,
	}
	_, err = tx.PutDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// document looks up live documents and tombstones
func (tx *Transaction) document(docID string) (*model.Document, error) {
	for _, bucket := range [][]byte{model.DocsBucket, model.DeletedBucket} {
		data, err := tx.tx.Get(bucket, []byte(docID))
		if errors.Is(err, port.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return decodeDocument(data)
	}

	return nil, port.ErrNotFound
}

func decodeDocument(data []byte) (*model.Document, error) {
	var doc model.Document
	err := bson.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
