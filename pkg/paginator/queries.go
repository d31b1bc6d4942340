package paginator

import (
	"context"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Queries applies the producer to every query and concatenates the
// results. Queries are executed one after another, a query is only
// started after the previous one was drained. The first failing
// query stops the whole sequence.
//
//	it := paginator.Queries(db, paginator.Rows)(queries)
func Queries[T any](source port.PageSource, producer Producer[T]) func(queries Iterator[model.AllDocsOptions]) Iterator[T] {
	return func(queries Iterator[model.AllDocsOptions]) Iterator[T] {
		return &concat[T]{
			source:   source,
			producer: producer,
			queries:  queries,
		}
	}
}

// QueriesOf is Queries for a fixed list of queries
func QueriesOf[T any](source port.PageSource, producer Producer[T], queries ...model.AllDocsOptions) Iterator[T] {
	return Queries(source, producer)(Slice(queries...))
}

type concat[T any] struct {
	source   port.PageSource
	producer Producer[T]
	queries  Iterator[model.AllDocsOptions]

	current Iterator[T]
	value   T
	done    bool
	err     error
}

func (c *concat[T]) Next(ctx context.Context) bool {
	var zero T
	c.value = zero

	for !c.done {
		if c.current != nil {
			if c.current.Next(ctx) {
				c.value = c.current.Value()
				return true
			}
			c.err = c.current.Err()
			c.current = nil
			if c.err != nil {
				c.done = true
				break
			}
		}

		if !c.queries.Next(ctx) {
			c.err = c.queries.Err()
			c.done = true
			break
		}
		c.current = c.producer(c.source, c.queries.Value())
	}

	return false
}

func (c *concat[T]) Value() T {
	return c.value
}

func (c *concat[T]) Err() error {
	return c.err
}
