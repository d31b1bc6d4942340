// Package paginator iterates over _all_docs results of any page source.
// A query with a limit is split into consecutive pages by moving the
// startkey to the last row of the previous page, the caller receives
// all matching rows in order without duplicates.
package paginator

import (
	"context"
	"iter"
)

// Iterator is a lazy, pull based sequence. Elements are only
// produced on Next, after Next returned false, Err tells if the
// sequence ended or failed.
type Iterator[T any] interface {
	// Next advances the iterator. If no more items are available
	// or an error occurs, calls to Next() return false.
	Next(ctx context.Context) bool
	// Value returns the current element
	Value() T
	// Err returns the error that stopped the iteration
	Err() error
}

// Collect drains the iterator. The already collected elements
// are returned together with the error if the iteration failed.
func Collect[T any](ctx context.Context, it Iterator[T]) ([]T, error) {
	var out []T
	for it.Next(ctx) {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

// Seq allows to range over the iterator. A failing iterator
// yields its error as last element.
func Seq[T any](ctx context.Context, it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next(ctx) {
			if !yield(it.Value(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// Slice iterates over the given values
func Slice[T any](values ...T) Iterator[T] {
	return &sliceIterator[T]{values: values, pos: -1}
}

type sliceIterator[T any] struct {
	values []T
	pos    int
}

func (s *sliceIterator[T]) Next(ctx context.Context) bool {
	if s.pos < len(s.values) {
		s.pos++
	}
	return s.pos < len(s.values)
}

func (s *sliceIterator[T]) Value() T {
	if s.pos < 0 || s.pos >= len(s.values) {
		var zero T
		return zero
	}
	return s.values[s.pos]
}

func (s *sliceIterator[T]) Err() error {
	return nil
}
