package gfapi

import (
	"context"
	"errors"
)

// ListPageFunc fetches one page of T and advances the query's cursor. The
// list methods on ListingsClient, ExchangesClient, and AccountClient all
// satisfy this shape.
type ListPageFunc[T any] func(ctx context.Context, query *Query) ([]T, error)

// CursorIterator walks a cursor-paginated list one item at a time.
type CursorIterator[T any] struct {
	ctx    context.Context
	list   ListPageFunc[T]
	query  *Query
	buffer []T
	index  int
	done   bool
	err    error
}

// NewCursorIterator creates an iterator over a paginated list endpoint. The
// query may be nil; one is created internally.
func NewCursorIterator[T any](ctx context.Context, list ListPageFunc[T], query *Query) *CursorIterator[T] {
	if query == nil {
		query = NewQuery()
	}

	return &CursorIterator[T]{
		ctx:   ctx,
		list:  list,
		query: query,
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the buffered one is drained.
func (it *CursorIterator[T]) HasNext() bool {
	if it.done {
		return false
	}

	if it.index < len(it.buffer) {
		return true
	}

	items, err := it.list(it.ctx, it.query)
	if err != nil {
		if errors.Is(err, ErrNoMoreItems) {
			it.done = true

			return false
		}

		// Surface the failure from the next call to Next.
		it.err = err

		return true
	}

	it.buffer = items
	it.index = 0

	return len(it.buffer) > 0 || it.HasNext()
}

// Next returns the next item. It fails once the traversal has ended or a
// page fetch failed.
func (it *CursorIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return zero, err
	}

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item.
func (it *CursorIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach applies fn to every remaining item, stopping at the first error.
func (it *CursorIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages walks the traversal in a goroutine and delivers whole pages on
// the returned channel. The channel is closed when the traversal terminates,
// fails, or the context is canceled; a failure is delivered as the final
// result's Err.
func StreamPages[T any](ctx context.Context, list ListPageFunc[T], query *Query) <-chan PageResult[T] {
	if query == nil {
		query = NewQuery()
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		for {
			items, err := list(ctx, query)
			if err != nil {
				if errors.Is(err, ErrNoMoreItems) {
					return
				}

				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: items}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}
