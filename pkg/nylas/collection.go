package nylas

import (
	"context"
)

// DefaultPageSize is the fixed page size used when draining a collection.
// A page shorter than this signals exhaustion; a page of exactly this size
// triggers one more request.
const DefaultPageSize = 50

// PageFunc fetches one page of resources using the given query params.
type PageFunc[T any] func(ctx context.Context, params *QueryParams) ([]T, error)

// PageResult carries one page of items or the error that ended a stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// Iterator lazily walks a resource collection by issuing offset/limit
// bounded list requests. The cursor advances by the number of items each
// page actually returned; iteration stops once a page comes back shorter
// than the page size. An Iterator is single-use; construct a new one to
// restart a traversal.
type Iterator[T any] struct {
	ctx      context.Context
	fetch    PageFunc[T]
	params   *QueryParams
	pageSize int
	offset   int
	buffer   []T
	index    int
	done     bool
	err      error
}

// NewIterator creates an iterator over a paginated collection. An explicit
// offset in params seeds the cursor, so a traversal can resume from a known
// position. A positive Limit in params overrides the default page size.
func NewIterator[T any](ctx context.Context, fetch PageFunc[T], params *QueryParams) *Iterator[T] {
	params = params.Clone()

	pageSize := DefaultPageSize
	if params.Limit > 0 {
		pageSize = params.Limit
	}

	offset := 0
	if params.Offset != nil {
		offset = *params.Offset
	}

	return &Iterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		params:   params,
		pageSize: pageSize,
		offset:   offset,
	}
}

// HasNext reports whether another item is available, fetching the next page
// if the buffer is exhausted.
func (it *Iterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.index < len(it.buffer) {
		return true
	}

	if it.done {
		return false
	}

	it.fetchNextPage()

	return it.err == nil && it.index < len(it.buffer)
}

// Next returns the next item. Callers should check HasNext first; calling
// Next on an exhausted iterator returns the zero value and any stored error.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, nil
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the remaining items into a slice.
func (it *Iterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *Iterator[T]) ForEach(fn func(T) error) error {
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

	return it.err
}

func (it *Iterator[T]) fetchNextPage() {
	if it.ctx.Err() != nil {
		it.err = it.ctx.Err()

		return
	}

	params := it.params.Clone()
	params.Limit = it.pageSize
	offset := it.offset
	params.Offset = &offset

	page, err := it.fetch(it.ctx, params)
	if err != nil {
		it.err = err

		return
	}

	it.buffer = page
	it.index = 0
	it.offset += len(page)

	if len(page) < it.pageSize {
		it.done = true
	}
}

// Stream yields pages on a channel so large collections can be consumed
// without materializing them. The channel is closed after the final page,
// an error, or context cancellation; an error ends the stream as the last
// PageResult.
func Stream[T any](ctx context.Context, fetch PageFunc[T], params *QueryParams) <-chan PageResult[T] {
	results := make(chan PageResult[T], 1)

	go func() {
		defer close(results)

		it := NewIterator[T](ctx, fetch, params)

		for !it.done && it.err == nil {
			it.fetchNextPage()

			if it.err != nil {
				break
			}

			if len(it.buffer) == 0 {
				break
			}

			select {
			case results <- PageResult[T]{Items: it.buffer}:
			case <-ctx.Done():
				return
			}
		}

		if it.err != nil {
			select {
			case results <- PageResult[T]{Err: it.err}:
			case <-ctx.Done():
			}
		}
	}()

	return results
}
