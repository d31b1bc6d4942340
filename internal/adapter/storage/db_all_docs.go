package storage

import (
	"context"
	"errors"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// AllDocs answers one _all_docs query. Each call uses its own read
// transaction, consecutive pages may therefore see different states.
func (d *Database) AllDocs(ctx context.Context, options model.AllDocsOptions) (*model.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err := options.Validate()
	if err != nil {
		return nil, err
	}

	page := &model.Page{Rows: []model.Row{}}
	err = d.engine.ReadTransaction(func(tx port.EngineReadTransaction) error {
		if options.Keys != nil {
			return lookupKeys(tx, options, page)
		}
		return scanRange(tx, options, page)
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

func scanRange(tx port.EngineReadTransaction, options model.AllDocsOptions, page *model.Page) error {
	iter := NewIterator(tx, model.NewIteratorOptions(options))
	page.TotalRows = iter.Total()

	doc := iter.First()
	page.Offset = iter.Offset()
	for ; iter.Continue(); doc = iter.Next() {
		if doc == nil {
			continue
		}
		page.Rows = append(page.Rows, model.NewRow(doc, options.IncludeDocs))
	}

	return nil
}

// lookupKeys returns the rows in the order of the keys, unknown
// keys are reported with a not_found error row
func lookupKeys(tx port.EngineReadTransaction, options model.AllDocsOptions, page *model.Page) error {
	rtx := newReadTransaction(tx)
	page.TotalRows = int(tx.BucketStats(model.DocsBucket).Keys)

	keys := options.Keys
	if options.Skip >= len(keys) {
		keys = nil
	} else {
		keys = keys[options.Skip:]
	}
	if options.Limit != nil && *options.Limit < len(keys) {
		keys = keys[:*options.Limit]
	}

	for _, key := range keys {
		doc, err := rtx.document(key)
		if errors.Is(err, port.ErrNotFound) {
			page.Rows = append(page.Rows, model.Row{Key: key, Error: model.RowErrorNotFound})
			continue
		}
		if err != nil {
			return err
		}
		page.Rows = append(page.Rows, model.NewRow(doc, options.IncludeDocs))
	}

	return nil
}
