package storage

import (
	"context"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

func (d *Database) Transaction(ctx context.Context, fn func(tx port.Transaction) error) error {
	return d.engine.WriteTransaction(func(tx port.EngineWriteTransaction) error {
		return fn(newWriteTransaction(tx))
	})
}

func (d *Database) RTransaction(ctx context.Context, fn func(tx port.Transaction) error) error {
	return d.engine.ReadTransaction(func(tx port.EngineReadTransaction) error {
		return fn(newReadTransaction(tx))
	})
}

func (d *Database) PutDocument(ctx context.Context, doc *model.Document) (string, error) {
	var rev string
	err := d.Transaction(ctx, func(tx port.Transaction) error {
		var err error
		rev, err = tx.PutDocument(ctx, doc)
		return err
	})
	return rev, err
}

func (d *Database) GetDocument(ctx context.Context, docID string) (*model.Document, error) {
	var doc *model.Document
	err := d.RTransaction(ctx, func(tx port.Transaction) error {
		var err error
		doc, err = tx.GetDocument(ctx, docID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (d *Database) DeleteDocument(ctx context.Context, docID, rev string) (*model.Document, error) {
	var doc *model.Document
	err := d.Transaction(ctx, func(tx port.Transaction) error {
		var err error
		doc, err = tx.DeleteDocument(ctx, docID, rev)
		return err
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

type BulkResult struct {
	ID  string
	Rev string
	Err error
}

// BulkDocs stores all documents in one transaction. Failing
// documents don't abort the transaction, their error is reported
// in the result instead.
func (d *Database) BulkDocs(ctx context.Context, docs []*model.Document) ([]BulkResult, error) {
	results := make([]BulkResult, len(docs))
	err := d.Transaction(ctx, func(tx port.Transaction) error {
		for i, doc := range docs {
			var rev string
			var err error

			if doc.Deleted {
				var deleted *model.Document
				rev, _ = doc.Revision()
				deleted, err = tx.DeleteDocument(ctx, doc.ID, rev)
				if err == nil {
					rev = deleted.Rev
				}
			} else {
				rev, err = tx.PutDocument(ctx, doc)
			}

			results[i] = BulkResult{ID: doc.ID, Rev: rev, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
